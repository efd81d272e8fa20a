// Copyright 2024 Daniel Erat.
// All rights reserved.

// Command spellfixd runs a small HTTP server that corrects spelling in
// submitted text.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/derat/spellfix/spell"
	"github.com/derat/spellfix/web"

	"golang.org/x/time/rate"
)

const (
	maxReqBytes    = 128 * 1024
	clientDelay    = time.Second // minimum time between requests per client
	maxQPS         = 10          // global bound on correction work
	rateBucketSize = 10
)

const formPage = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>spellfixd</title></head>
<body>
<h1>spellfixd</h1>
<form method="post" action="/correct">
<p><textarea name="text" rows="8" cols="60"></textarea></p>
<p><label><input type="checkbox" name="html" value="1"> Input is HTML</label></p>
<p><input type="submit" value="Correct"></p>
</form>
</body>
</html>
`

func main() {
	addr := flag.String("addr", "localhost:8099", "Address to listen on")
	maxEdits := flag.Int("max-edits", 2, "Maximum edit distance for candidate words")
	vocabPath := flag.String("vocab", "", "Path to a newline-delimited word list (default is an embedded English list)")
	flag.Parse()

	vocab := spell.DefaultVocabulary()
	if *vocabPath != "" {
		var err error
		if vocab, err = spell.LoadVocabulary(*vocabPath); err != nil {
			log.Fatal("Failed loading vocabulary: ", err)
		}
	}

	srv := &server{
		vocab:    vocab,
		maxEdits: *maxEdits,
		rm:       newRateMap(),
		limiter:  rate.NewLimiter(maxQPS, rateBucketSize),
	}
	http.HandleFunc("/", srv.handleForm)
	http.HandleFunc("/correct", srv.handleCorrect)

	log.Print("Listening at http://", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}

// server holds state shared by all requests.
type server struct {
	vocab    *spell.Vocabulary
	maxEdits int
	rm       *rateMap      // per-client rate limiting
	limiter  *rate.Limiter // global bound on correction work
}

func (srv *server) handleForm(w http.ResponseWriter, req *http.Request) {
	if req.URL.Path != "/" {
		http.NotFound(w, req)
		return
	}
	if req.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(formPage)); err != nil {
		log.Print("Failed writing page: ", err)
	}
}

// correction is returned to /correct callers as JSON.
type correction struct {
	Original     string              `json:"original"`
	Corrected    string              `json:"corrected"`
	Misspellings []spell.Misspelling `json:"misspellings"`
}

func (srv *server) handleCorrect(w http.ResponseWriter, req *http.Request) {
	res, err := srv.correctRequest(w, req)
	if err != nil {
		var msg string
		code := http.StatusInternalServerError
		if herr, ok := err.(*httpError); ok {
			code = herr.code
			msg = herr.msg
		}
		if msg == "" {
			msg = http.StatusText(code)
		}
		log.Printf("Sending %d to %s: %v", code, req.RemoteAddr, err)
		http.Error(w, msg, code)
		return
	}
	log.Printf("Corrected %d-byte request from %s with %d misspelling(s)",
		req.ContentLength, req.RemoteAddr, len(res.Misspellings))
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("Failed sending correction to %s: %v", req.RemoteAddr, err)
	}
}

// correctRequest handles a single /correct request.
func (srv *server) correctRequest(w http.ResponseWriter, req *http.Request) (*correction, error) {
	if req.Method != http.MethodPost {
		return nil, httpErrorf(http.StatusMethodNotAllowed, "bad method %q", req.Method)
	}

	if ip, _, err := net.SplitHostPort(req.RemoteAddr); err == nil {
		if !srv.rm.update(ip, time.Now(), clientDelay) {
			return nil, &httpError{
				code: http.StatusTooManyRequests,
				msg:  "Please wait a moment and try again",
				err:  errors.New("too many requests"),
			}
		}
	}
	if !srv.limiter.Allow() {
		return nil, &httpError{
			code: http.StatusTooManyRequests,
			msg:  "Server is busy",
			err:  errors.New("global rate limit exceeded"),
		}
	}

	req.Body = http.MaxBytesReader(w, req.Body, maxReqBytes)
	if err := req.ParseForm(); err != nil {
		return nil, &httpError{http.StatusBadRequest, "", err}
	}

	text := req.FormValue("text")
	if req.FormValue("html") != "" {
		page, err := web.Parse(strings.NewReader(text))
		if err != nil {
			return nil, &httpError{http.StatusBadRequest, "Failed parsing HTML", err}
		}
		text = page.Text()
	}

	corr := spell.NewCorrector(text, srv.vocab, spell.MaxEdits(srv.maxEdits))
	return &correction{
		Original:     text,
		Corrected:    corr.Corrected(),
		Misspellings: corr.Misspellings(),
	}, nil
}

// httpError implements the error interface but also wraps an HTTP status code
// and message that should be returned to the user.
type httpError struct {
	code int    // HTTP status code
	msg  string // message to display to user; if empty, generated from code
	err  error  // actual underlying error to log
}

func (e *httpError) Error() string { return e.err.Error() }

// httpErrorf returns an *httpError with the supplied status code and an err
// field constructed from format and args. The user-visible message will just
// be generated from code.
func httpErrorf(code int, format string, args ...any) *httpError {
	return &httpError{code: code, err: fmt.Errorf(format, args...)}
}

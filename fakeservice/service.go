// Package fakeservice is an in-process implementation of the favorites endpoints that follows
// the documented rules, so the suite can be exercised without the real deployment.
package fakeservice

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/favorites-qa/favorites-contract-tests/logging"
	"github.com/favorites-qa/favorites-contract-tests/placeapi"
	"github.com/favorites-qa/favorites-contract-tests/spectable"
)

const DefaultTokenTTL = time.Second * 2

type Options struct {
	Catalog  spectable.Catalog
	Quirks   spectable.Quirks
	TokenTTL time.Duration
	Logger   logging.Logger

	// Now replaces the clock used for token expiry and timestamps.
	Now func() time.Time
}

type Service struct {
	rules    spectable.Rules
	tokenTTL time.Duration
	logger   logging.Logger
	now      func() time.Time
	tokens   map[string]time.Time
	places   []Place
	lastID   int64
	lock     sync.Mutex
}

// Place is a created favorite, as the service returns it.
type Place struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Color     *string `json:"color"`
	CreatedAt string  `json:"created_at"`
}

type errorBody struct {
	Error errorMessage `json:"error"`
}

type errorMessage struct {
	Message string `json:"message"`
}

func New(opts Options) *Service {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = DefaultTokenTTL
	}
	if opts.Logger == nil {
		opts.Logger = logging.NullLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		rules:    spectable.Rules{Catalog: opts.Catalog, Quirks: opts.Quirks},
		tokenTTL: opts.TokenTTL,
		logger:   opts.Logger,
		now:      opts.Now,
		tokens:   make(map[string]time.Time),
	}
}

func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(placeapi.TokensPath, s.postOnly(s.issueToken))
	mux.HandleFunc(placeapi.FavoritesPath, s.postOnly(s.createFavorite))
	return mux
}

// Places returns everything created so far.
func (s *Service) Places() []Place {
	s.lock.Lock()
	defer s.lock.Unlock()
	return append([]Place(nil), s.places...)
}

func (s *Service) postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.Header().Set("Allow", http.MethodPost)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

func (s *Service) issueToken(w http.ResponseWriter, r *http.Request) {
	token := uuid.NewString()
	s.lock.Lock()
	s.tokens[token] = s.now()
	s.lock.Unlock()

	s.logger.Printf("Issued token %s", token)
	http.SetCookie(w, &http.Cookie{Name: placeapi.TokenCookie, Value: token, Path: "/"})
	w.WriteHeader(http.StatusOK)
}

func (s *Service) createFavorite(w http.ResponseWriter, r *http.Request) {
	if status, message := s.authenticate(r); status != http.StatusOK {
		s.writeError(w, status, message)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if v := s.rules.Check(r.PostForm); v != nil {
		s.writeError(w, v.Status, v.Message)
		return
	}

	lat, _ := spectable.ParseCoordinate(r.PostForm.Get(string(placeapi.FieldLat)))
	lon, _ := spectable.ParseCoordinate(r.PostForm.Get(string(placeapi.FieldLon)))
	p := Place{
		Title: r.PostForm.Get(string(placeapi.FieldTitle)),
		Lat:   lat,
		Lon:   lon,
	}
	if _, ok := r.PostForm[string(placeapi.FieldColor)]; ok {
		color := r.PostForm.Get(string(placeapi.FieldColor))
		p.Color = &color
	}

	s.lock.Lock()
	s.lastID++
	p.ID = s.lastID
	p.CreatedAt = s.now().UTC().Format(time.RFC3339)
	s.places = append(s.places, p)
	s.lock.Unlock()

	s.logger.Printf("Created place %d", p.ID)
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Service) authenticate(r *http.Request) (int, string) {
	cookie, err := r.Cookie(placeapi.TokenCookie)
	if err != nil || cookie.Value == "" {
		return http.StatusUnauthorized, s.rules.Catalog.TokenRequiredMessage()
	}
	s.lock.Lock()
	issued, ok := s.tokens[cookie.Value]
	s.lock.Unlock()
	if !ok {
		return http.StatusUnauthorized, s.rules.Catalog.TokenUnknownMessage()
	}
	if s.now().Sub(issued) > s.tokenTTL {
		return http.StatusUnauthorized, s.rules.Catalog.TokenExpiredMessage()
	}
	return http.StatusOK, ""
}

func (s *Service) writeError(w http.ResponseWriter, status int, message string) {
	s.logger.Printf("Rejected with %d: %s", status, message)
	s.writeJSON(w, status, errorBody{Error: errorMessage{Message: message}})
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	accountservice "inkwell/contexts/identity/account-service"
	"inkwell/contexts/identity/account-service/domain/entities"
	accounterrors "inkwell/contexts/identity/account-service/domain/errors"
	accounthttp "inkwell/contexts/identity/account-service/transport/http"
	blogservice "inkwell/contexts/publishing/blog-service"
	blogerrors "inkwell/contexts/publishing/blog-service/domain/errors"
	bloghttp "inkwell/contexts/publishing/blog-service/transport/http"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "inkwell/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	accounts accountservice.Module
	blogs    blogservice.Module
}

func New(
	accounts accountservice.Module,
	blogs blogservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		accounts: accounts,
		blogs:    blogs,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Handler wraps the mux with permissive CORS. The original deployment sat
// behind a browser frontend on another origin.
func (s *Server) Handler() http.Handler {
	return corsAllowAll(s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /user_creation", s.handleRegister)
	s.mux.HandleFunc("POST /login", s.handleLogin)
	s.mux.HandleFunc("POST /create", s.handleCreatePost)
	s.mux.HandleFunc("GET /read", s.handleReadPosts)
	s.mux.HandleFunc("PUT /update", s.handleUpdatePost)
	s.mux.HandleFunc("DELETE /delete", s.handleDeletePost)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req accounthttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.accounts.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		s.writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeAccountError(w, http.StatusBadRequest, "invalid_form", "request body must be form encoded")
		return
	}

	resp, err := s.accounts.Handler.LoginHandler(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
	if err != nil {
		s.writeAccountDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	identity, ok := s.requireAdmin(w, r)
	if !ok {
		return
	}

	var req bloghttp.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBlogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.blogs.Handler.CreatePostHandler(r.Context(), identity.UserID, req)
	if err != nil {
		s.writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReadPosts(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireIdentity(w, r); !ok {
		return
	}

	resp, err := s.blogs.Handler.ListPostsHandler(r.Context())
	if err != nil {
		s.writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	blogID, ok := parseBlogID(w, r)
	if !ok {
		return
	}

	var req bloghttp.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBlogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.blogs.Handler.UpdatePostHandler(r.Context(), blogID, req)
	if err != nil {
		s.writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAdmin(w, r); !ok {
		return
	}

	blogID, ok := parseBlogID(w, r)
	if !ok {
		return
	}

	resp, err := s.blogs.Handler.DeletePostHandler(r.Context(), blogID)
	if err != nil {
		s.writeBlogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// requireIdentity extracts the bearer token and resolves it to the current
// stored identity. Token failures answer 401 with a bearer challenge; a
// token whose subject no longer exists answers 404.
func (s *Server) requireIdentity(w http.ResponseWriter, r *http.Request) (entities.Identity, bool) {
	token, ok := bearerToken(r)
	if !ok {
		writeUnauthorized(w, "missing_token", "authorization bearer token is required")
		return entities.Identity{}, false
	}

	identity, err := s.accounts.Handler.AuthenticateHandler(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, accounterrors.ErrInvalidToken), errors.Is(err, accounterrors.ErrMissingSubject):
			writeUnauthorized(w, "invalid_token", accounterrors.ErrInvalidToken.Error())
		case errors.Is(err, accounterrors.ErrProfileNotFound):
			writeAccountError(w, http.StatusNotFound, "user_not_found", err.Error())
		default:
			// A store failure during the subject lookup is not a bad
			// token; the caller gets 500, never 401.
			s.logger.Error("authenticate lookup failed",
				"event", "http_authenticate_lookup_failed",
				"module", "internal/platform/httpserver",
				"layer", "platform",
				"error", err.Error(),
			)
			writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return entities.Identity{}, false
	}
	return identity, true
}

// requireAdmin layers the role gate on top of requireIdentity. An invalid
// token never reaches the role check.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) (entities.Identity, bool) {
	identity, ok := s.requireIdentity(w, r)
	if !ok {
		return entities.Identity{}, false
	}

	identity, err := s.accounts.Handler.RequireAdmin(identity)
	if err != nil {
		writeAccountError(w, http.StatusForbidden, "admin_required", err.Error())
		return entities.Identity{}, false
	}
	return identity, true
}

func (s *Server) writeAccountDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, accounterrors.ErrUsernameTaken):
		writeAccountError(w, http.StatusConflict, "username_taken", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidCredentials):
		writeUnauthorized(w, "invalid_credentials", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidToken), errors.Is(err, accounterrors.ErrMissingSubject):
		writeUnauthorized(w, "invalid_token", accounterrors.ErrInvalidToken.Error())
	case errors.Is(err, accounterrors.ErrProfileNotFound):
		writeAccountError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, accounterrors.ErrInvalidRequest):
		writeAccountError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		s.logger.Error("account request failed",
			"event", "http_account_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeAccountError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) writeBlogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blogerrors.ErrBlogNotFound):
		writeBlogError(w, http.StatusNotFound, "blog_not_found", err.Error())
	case errors.Is(err, blogerrors.ErrInvalidRequest):
		writeBlogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		s.logger.Error("blog request failed",
			"event", "http_blog_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeBlogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func parseBlogID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.URL.Query().Get("blog_id")
	blogID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || blogID <= 0 {
		writeBlogError(w, http.StatusBadRequest, "invalid_blog_id", "blog_id must be a positive integer")
		return 0, false
	}
	return blogID, true
}

func writeUnauthorized(w http.ResponseWriter, code string, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeAccountError(w, http.StatusUnauthorized, code, message)
}

func writeAccountError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, accounthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeBlogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, bloghttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func corsAllowAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

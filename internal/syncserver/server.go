// Package syncserver exposes the snapshot sync protocol over HTTP: signup,
// login, and an authenticated pull/push pair with last-write-wins conflict
// resolution keyed on the snapshot's UpdatedAt stamp.
package syncserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"routined/internal/identity"
	"routined/internal/model"
	"routined/internal/session"
	"routined/internal/storage"
)

var validate = validator.New()

type signupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Server wires the identity and storage collaborators behind the sync API.
type Server struct {
	users     *identity.UserStore
	tokens    *identity.TokenManager
	snapshots storage.SnapshotStore
	clock     session.Clock
}

func NewServer(users *identity.UserStore, tokens *identity.TokenManager, snapshots storage.SnapshotStore, clock session.Clock) *Server {
	if clock == nil {
		clock = session.SystemClock{}
	}
	return &Server{users: users, tokens: tokens, snapshots: snapshots, clock: clock}
}

// Router builds the gin engine with all sync routes mounted under /api.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/signup", s.signup)
	api.POST("/login", s.login)

	protected := api.Group("/")
	protected.Use(s.authenticate)
	{
		protected.GET("/snapshot", s.getSnapshot)
		protected.PUT("/snapshot", s.putSnapshot)
	}
	return r
}

func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := s.tokens.Issue(id, s.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, UserID: id.UserID, Email: id.Email})
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := s.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	token, err := s.tokens.Issue(id, s.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, authResponse{Token: token, UserID: id.UserID, Email: id.Email})
}

// authenticate checks the Bearer token and stashes the claims for handlers
// downstream.
func (s *Server) authenticate(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	claims, err := s.tokens.Validate(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.Set("claims", claims)
	c.Next()
}

func claimsFrom(c *gin.Context) (*identity.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		return nil, false
	}
	claims, ok := v.(*identity.Claims)
	return claims, ok
}

func (s *Server) getSnapshot(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	snap, err := s.snapshots.Load(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no snapshot uploaded yet"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// putSnapshot accepts a client snapshot and stores it unless the server copy
// is strictly newer, in which case the server copy wins and is returned so
// the client can adopt it.
func (s *Server) putSnapshot(c *gin.Context) {
	claims, ok := claimsFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var incoming model.Snapshot
	if err := c.BindJSON(&incoming); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid snapshot body"})
		return
	}
	if err := incoming.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	current, err := s.snapshots.Load(ctx, claims.UserID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// first upload for this user
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	case current.UpdatedAt.After(incoming.UpdatedAt):
		c.JSON(http.StatusConflict, current)
		return
	}

	if err := s.snapshots.Save(ctx, claims.UserID, incoming); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "snapshot stored"})
}

// routes.go - HTTP-Server fuer einen geladenen Tokenizer
//
// Enthaelt:
// - Server: haelt Tokenizer und Encode-Cache
// - GenerateRoutes: gin-Router mit CORS und Middleware
// - EncodeHandler, DecodeHandler, ShowHandler
// - Serve: startet den Server und beendet ihn bei SIGINT/SIGTERM
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"

	"github.com/bpe-go/bpe/api"
	"github.com/bpe-go/bpe/envconfig"
	"github.com/bpe-go/bpe/logutil"
	"github.com/bpe-go/bpe/tokenizer"
	"github.com/bpe-go/bpe/version"
)

// Server serves a single frozen tokenizer. Handlers only read from it.
type Server struct {
	addr net.Addr
	tok  *tokenizer.Tokenizer

	// cache maps text to its encoding; nil when BPE_ENCODE_CACHE=0
	cache *lru.Cache
}

// NewServer creates a Server for tok listening on addr.
func NewServer(addr net.Addr, tok *tokenizer.Tokenizer) (*Server, error) {
	s := &Server{addr: addr, tok: tok}

	if size := int(envconfig.EncodeCache()); size > 0 {
		cache, err := lru.New(size)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}

	return s, nil
}

func (s *Server) GenerateRoutes() http.Handler {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowWildcard = true
	corsConfig.AllowBrowserExtensions = true
	corsConfig.AllowHeaders = []string{
		"Authorization",
		"Content-Type",
		"User-Agent",
		"Accept",
		"X-Requested-With",
	}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	corsConfig.AllowOrigins = envconfig.AllowedOrigins()

	r := gin.Default()
	r.HandleMethodNotAllowed = true
	r.Use(
		requestIDMiddleware(),
		cors.New(corsConfig),
		allowedHostsMiddleware(s.addr),
	)

	// General
	r.HEAD("/", func(c *gin.Context) { c.String(http.StatusOK, "bpe is running") })
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, "bpe is running") })
	r.HEAD("/api/version", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"version": version.Version}) })
	r.GET("/api/version", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"version": version.Version}) })

	// Tokenizer
	r.POST("/api/encode", s.EncodeHandler)
	r.POST("/api/decode", s.DecodeHandler)
	r.GET("/api/show", s.ShowHandler)

	return r
}

func (s *Server) EncodeHandler(c *gin.Context) {
	var req api.EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if s.cache != nil {
		if ids, ok := s.cache.Get(req.Text); ok {
			logutil.Trace("encode cache hit", "bytes", len(req.Text))
			c.JSON(http.StatusOK, api.EncodeResponse{IDs: ids.([]int)})
			return
		}
	}

	ids := s.tok.Encode(req.Text)
	if s.cache != nil {
		s.cache.Add(req.Text, ids)
	}

	c.JSON(http.StatusOK, api.EncodeResponse{IDs: ids})
}

func (s *Server) DecodeHandler(c *gin.Context) {
	var req api.DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := s.tok.Decode(req.IDs)
	switch {
	case errors.Is(err, tokenizer.ErrUnknownSymbol):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.DecodeResponse{Text: text})
}

func (s *Server) ShowHandler(c *gin.Context) {
	merges := s.tok.Merges().Merges()

	resp := api.ShowResponse{
		VocabSize: s.tok.VocabSize(),
		Pattern:   s.tok.Pattern(),
		Merges:    make([]api.Merge, len(merges)),
	}
	for i, m := range merges {
		resp.Merges[i] = api.Merge{Left: m.Pair.Left, Right: m.Pair.Right, ID: m.ID}
	}

	c.JSON(http.StatusOK, resp)
}

// Serve serves tok on ln until the process receives SIGINT or SIGTERM.
func Serve(ln net.Listener, tok *tokenizer.Tokenizer) error {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
	slog.Info("server config", "env", envconfig.Values())

	s, err := NewServer(ln.Addr(), tok)
	if err != nil {
		return err
	}

	slog.Info(fmt.Sprintf("Listening on %s (version %s)", ln.Addr(), version.Version), "vocab_size", tok.VocabSize())
	srvr := &http.Server{
		Handler: s.GenerateRoutes(),
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signals
		srvr.Close()
	}()

	if err := srvr.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

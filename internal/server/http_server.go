package server

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/treeforest/easyb58/base58"
	"github.com/treeforest/easyb58/config"
	"github.com/treeforest/easyb58/pkg/digest"
	"github.com/treeforest/easyb58/pkg/ids"
	log "github.com/treeforest/logger"
)

type HttpServer struct {
	width int // 请求未指定宽度时使用
	srv   *http.Server
}

func NewHttpServer(conf *config.Config) *HttpServer {
	s := &HttpServer{width: conf.Width}
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.HttpServerPort),
		Handler: s.Handler(),
	}
	return s
}

// Handler returns the routes of the service.
func (s *HttpServer) Handler() http.Handler {
	r := gin.Default()

	r.POST("/encode", s.handleEncode)
	r.POST("/decode", s.handleDecode)
	r.POST("/parse", s.handleParse)
	r.GET("/uuid", s.handleUUID)
	r.POST("/digest", s.handleDigest)

	return r
}

// Run serves until Shutdown is called.
func (s *HttpServer) Run() error {
	log.Infof("http server listening on %s", s.srv.Addr)
	err := s.srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return errors.WithStack(err)
	}
	return nil
}

func (s *HttpServer) Shutdown(ctx context.Context) error {
	log.Info("http server shutting down")
	return errors.WithStack(s.srv.Shutdown(ctx))
}

type textRequest struct {
	Width int    `json:"width"`
	Text  string `json:"text"`
}

func (s *HttpServer) handleEncode(c *gin.Context) {
	type Request struct {
		Hex string `json:"hex" binding:"required"`
	}
	req := Request{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return
	}

	b, err := hex.DecodeString(req.Hex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hex: " + err.Error()})
		return
	}
	text, err := base58.EncodeToString(b)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type Response struct {
		Width int    `json:"width"`
		Text  string `json:"text"`
	}
	c.JSON(http.StatusOK, Response{Width: len(b), Text: text})
}

func (s *HttpServer) handleDecode(c *gin.Context) {
	req, ok := s.bindText(c)
	if !ok {
		return
	}

	b, err := base58.DecodeString(req.Width, req.Text)
	if err != nil {
		log.Debugf("decode %q failed: %v", req.Text, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type Response struct {
		Hex string `json:"hex"`
	}
	c.JSON(http.StatusOK, Response{Hex: hex.EncodeToString(b)})
}

func (s *HttpServer) handleParse(c *gin.Context) {
	req, ok := s.bindText(c)
	if !ok {
		return
	}

	text, err := base58.ParseString(req.Width, req.Text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type Response struct {
		Text string `json:"text"`
	}
	c.JSON(http.StatusOK, Response{Text: text})
}

func (s *HttpServer) handleUUID(c *gin.Context) {
	id, text := ids.New()

	type Response struct {
		UUID string `json:"uuid"`
		Text string `json:"text"`
	}
	c.JSON(http.StatusOK, Response{UUID: id.String(), Text: text.String()})
}

func (s *HttpServer) handleDigest(c *gin.Context) {
	width, err := strconv.Atoi(c.DefaultQuery("width", "32"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width must be a number"})
		return
	}

	text, err := digest.Reader(c.Request.Body, width)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	type Response struct {
		Width int    `json:"width"`
		Text  string `json:"text"`
	}
	c.JSON(http.StatusOK, Response{Width: width, Text: text})
}

// bindText reads a textRequest, filling in the default width.
func (s *HttpServer) bindText(c *gin.Context) (textRequest, bool) {
	req := textRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request obj error"})
		return req, false
	}
	if req.Width == 0 {
		req.Width = s.width
	}
	return req, true
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/treeforest/easyb58/base58"
	"github.com/treeforest/easyb58/config"
	"github.com/treeforest/easyb58/pkg/digest"
	"github.com/treeforest/easyb58/pkg/ids"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newHandler() http.Handler {
	conf := config.DefaultConfig()
	conf.Width = 16
	return NewHttpServer(conf).Handler()
}

func do(t *testing.T, h http.Handler, method, target, body string) (int, map[string]interface{}) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	resp := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}

func TestEncode(t *testing.T) {
	h := newHandler()

	code, resp := do(t, h, http.MethodPost, "/encode", `{"hex":"`+strings.Repeat("ff", 16)+`"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "YcVfxkQb6JRzqk5kF2tNLv", resp["text"])
	require.Equal(t, float64(16), resp["width"])

	code, resp = do(t, h, http.MethodPost, "/encode", `{"hex":"`+strings.Repeat("00", 64)+`"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, strings.Repeat("1", 88), resp["text"])

	code, resp = do(t, h, http.MethodPost, "/encode", `{"hex":"abcd"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, resp["error"], "unsupported width")

	code, _ = do(t, h, http.MethodPost, "/encode", `{"hex":"zz"}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/encode", `{}`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestDecode(t *testing.T) {
	h := newHandler()

	code, resp := do(t, h, http.MethodPost, "/decode", `{"text":"abcd"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "00000000000000000000000000640602", resp["hex"])

	code, resp = do(t, h, http.MethodPost, "/decode", `{"width":32,"text":""}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, strings.Repeat("00", 32), resp["hex"])

	code, resp = do(t, h, http.MethodPost, "/decode", `{"text":"0OIl"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, resp["error"], "bad input")

	code, _ = do(t, h, http.MethodPost, "/decode", `{"width":20,"text":"a"}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/decode", `not json`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestParse(t *testing.T) {
	h := newHandler()

	code, resp := do(t, h, http.MethodPost, "/parse", `{"text":"abcd"}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "111111111111111111abcd", resp["text"])

	code, _ = do(t, h, http.MethodPost, "/parse", `{"text":"`+strings.Repeat("z", 23)+`"}`)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestUUID(t *testing.T) {
	code, resp := do(t, newHandler(), http.MethodGet, "/uuid", "")
	require.Equal(t, http.StatusOK, code)

	text, ok := resp["text"].(string)
	require.True(t, ok)
	id, err := ids.Parse(text)
	require.NoError(t, err)
	require.Equal(t, resp["uuid"], id.String())
}

func TestDigest(t *testing.T) {
	h := newHandler()
	body := "this is the example"

	code, resp := do(t, h, http.MethodPost, "/digest", body)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, digest.Sum32([]byte(body)).String(), resp["text"])

	code, resp = do(t, h, http.MethodPost, "/digest?width=64", body)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, digest.Sum64([]byte(body)).String(), resp["text"])
	require.Len(t, resp["text"], base58.String64Size)

	code, _ = do(t, h, http.MethodPost, "/digest?width=16", body)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, h, http.MethodPost, "/digest?width=x", body)
	require.Equal(t, http.StatusBadRequest, code)
}

func TestUnknownRoute(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/height", bytes.NewReader(nil))
	w := httptest.NewRecorder()
	newHandler().ServeHTTP(w, req)
	require.Equal(t, http.StatusNotFound, w.Code)
}

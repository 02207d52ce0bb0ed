package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("request_id", "req-123")

	Error(c, CodeInternal, "boom")

	var env struct {
		StatusCode int               `json:"status_code"`
		Msg        string            `json:"msg"`
		Data       map[string]string `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if env.StatusCode != CodeInternal || env.Msg != "boom" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if env.Data["request_id"] != "req-123" {
		t.Errorf("got request_id %q, want req-123", env.Data["request_id"])
	}
}

func TestErrorWithoutRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	NotFound(c, "missing")

	var env struct {
		StatusCode int         `json:"status_code"`
		Data       interface{} `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if env.StatusCode != CodeNotFound {
		t.Fatalf("got status_code %d, want %d", env.StatusCode, CodeNotFound)
	}
	if env.Data != nil {
		t.Errorf("expected nil data, got %v", env.Data)
	}
}

func TestErrorWithDataWrapsNonMapPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Set("request_id", "req-456")

	ErrorWithData(c, CodeBadRequest, "bad", []string{"detail"})

	var env struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if env.Data["request_id"] != "req-456" {
		t.Errorf("got request_id %v, want req-456", env.Data["request_id"])
	}
	if _, ok := env.Data["data"]; !ok {
		t.Error("payload not nested under data key")
	}
}

package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type stubResponse struct {
	status int
	body   any
}

// ApiMock is an HTTP server standing in for a third-party API. Responses are
// configured per method and path; request bodies are recorded in arrival order.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]map[string]any
	responses map[string]map[int]stubResponse
	defaults  map[string]stubResponse
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests:  map[string][]map[string]any{},
		responses: map[string]map[int]stubResponse{},
		defaults:  map[string]stubResponse{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	if a.server == nil {
		return ""
	}
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	request := map[string]any{}
	_ = json.Unmarshal(body, &request)

	a.mu.Lock()
	index := len(a.requests[key])
	a.requests[key] = append(a.requests[key], request)
	resp := a.responseFor(key, index)
	a.mu.Unlock()

	payload, _ := json.Marshal(resp.body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.status)
	_, _ = w.Write(payload)
}

// SetResponse configures the reply to the index-th request on method and
// path. An index of -1 sets the default reply.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	stub := stubResponse{status: status, body: response}
	if index == -1 {
		a.defaults[key] = stub
		return
	}
	if a.responses[key] == nil {
		a.responses[key] = map[int]stubResponse{}
	}
	a.responses[key][index] = stub
}

func (a *ApiMock) responseFor(key string, index int) stubResponse {
	if stub, ok := a.responses[key][index]; ok {
		return stub
	}
	if stub, ok := a.defaults[key]; ok {
		return stub
	}
	return stubResponse{status: http.StatusOK, body: map[string]any{}}
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()

	requests := a.requests[method+path]
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index]
}

func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// Reset forgets every recorded request and configured response.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]map[string]any{}
	a.responses = map[string]map[int]stubResponse{}
	a.defaults = map[string]stubResponse{}
}

package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

type stubbedResponse struct {
	status int
	body   map[string]any
}

// ApiMock records every request an outbound HTTP integration makes and
// serves stubbed responses, defaulting to 200 with an empty JSON object.
type ApiMock struct {
	mu       sync.Mutex
	requests map[string][]map[string]any
	stubs    map[string]stubbedResponse
	url      string
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		requests: map[string][]map[string]any{},
		stubs:    map[string]stubbedResponse{},
	}
}

func (a *ApiMock) Start() {
	server := httptest.NewServer(http.HandlerFunc(a.handle))
	a.url = server.URL
}

func (a *ApiMock) GetUrl() string {
	return a.url
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	body := map[string]any{}
	_ = json.Unmarshal(raw, &body)

	a.mu.Lock()
	key := r.Method + r.URL.Path
	a.requests[key] = append(a.requests[key], body)
	stub, stubbed := a.stubs[key]
	a.mu.Unlock()

	if !stubbed {
		stub = stubbedResponse{status: http.StatusOK, body: map[string]any{}}
	}
	payload, _ := json.Marshal(stub.body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(stub.status)
	_, _ = w.Write(payload)
}

// SetResponse stubs the response for all requests to method+path.
func (a *ApiMock) SetResponse(method, path string, status int, body map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stubs[method+path] = stubbedResponse{status: status, body: body}
}

// GetRequestBody returns the decoded body of the index-th request made to
// method+path, or nil if fewer requests were recorded.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	recorded := a.requests[method+path]
	if index < 0 || index >= len(recorded) {
		return nil
	}
	return recorded[index]
}

// RequestCount returns how many requests were made to method+path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// ClearResponses drops the recorded requests and stubs for method+path.
func (a *ApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.requests, method+path)
	delete(a.stubs, method+path)
}

package api

import (
	"net/http"
	"testing"
)

func TestLanguageMiddlewarePrefersCookieOverAcceptLanguage(t *testing.T) {
	env := newTestApp(t)

	response := env.do(t, testRequest{method: http.MethodGet, path: "/dojos", accept: "application/json", lang: "pt-BR,pt;q=0.9"})
	assertStatus(t, response, http.StatusOK)
	if got := response.Header.Get("Content-Language"); got != "pt" {
		t.Fatalf("expected Content-Language pt from Accept-Language, got %q", got)
	}
	if cookie := responseCookie(response.Cookies(), languageCookieName); cookie == nil || cookie.Value != "pt" {
		t.Fatalf("expected detected language to be pinned in cookie, got %+v", cookie)
	}

	response = env.do(t, testRequest{
		method: http.MethodGet,
		path:   "/dojos",
		accept: "application/json",
		cookie: languageCookieName + "=en",
		lang:   "pt-BR",
	})
	if got := response.Header.Get("Content-Language"); got != "en" {
		t.Fatalf("expected cookie language en to win, got %q", got)
	}
	if page := decodePage(t, response); page.Lang != "en" {
		t.Fatalf("expected page lang en, got %q", page.Lang)
	}
}

func TestSetLanguageAnswersJSONClients(t *testing.T) {
	env := newTestApp(t)

	response := env.do(t, testRequest{method: http.MethodGet, path: "/lang/pt", accept: "application/json"})

	assertStatus(t, response, http.StatusOK)
	if cookie := responseCookie(response.Cookies(), languageCookieName); cookie == nil || cookie.Value != "pt" {
		t.Fatalf("expected pt language cookie, got %+v", cookie)
	}
}

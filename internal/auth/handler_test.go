package auth_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/mauriciopaint/backoffice/internal/auth"
	"github.com/mauriciopaint/backoffice/internal/transport"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Auth Handler", func() {
	var (
		handler *auth.Handler
		issuer  *auth.TokenIssuer
	)

	okProbe := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	BeforeEach(func() {
		mockRepo := NewMockUserRepository()
		hash, err := bcrypt.GenerateFromPassword([]byte("pati2025"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())
		Expect(mockRepo.Create(&auth.User{
			ID:           1,
			Username:     "Patricia",
			PasswordHash: string(hash),
			Role:         auth.RoleAccountant,
		})).To(Succeed())

		issuer = auth.NewTokenIssuer("test-secret", 30*time.Minute)
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service := auth.NewService(mockRepo, issuer, bcrypt.MinCost, logger)
		handler = auth.NewHandler(transport.NewBaseHandler(logger), service)
	})

	Describe("Login", func() {
		doLogin := func(username, password string) *httptest.ResponseRecorder {
			body, _ := json.Marshal(auth.LoginDTO{Username: username, Password: password})
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
			rec := httptest.NewRecorder()
			handler.Login(rec, req)
			return rec
		}

		It("should set both session cookies and return the token", func() {
			rec := doLogin("Patricia", "pati2025")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp auth.LoginResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.TokenType).To(Equal("bearer"))
			Expect(resp.AccessToken).NotTo(BeEmpty())

			cookies := rec.Result().Cookies()
			var tokenCookie, markerCookie *http.Cookie
			for _, c := range cookies {
				switch c.Name {
				case auth.CookieAccessToken:
					tokenCookie = c
				case auth.CookieSessionActive:
					markerCookie = c
				}
			}
			Expect(tokenCookie).NotTo(BeNil())
			Expect(tokenCookie.Value).To(Equal("bearer " + resp.AccessToken))
			Expect(tokenCookie.HttpOnly).To(BeTrue())
			Expect(markerCookie).NotTo(BeNil())
			Expect(markerCookie.Value).To(Equal(auth.SessionActiveValue))
		})

		It("should return 401 for bad credentials", func() {
			rec := doLogin("Patricia", "wrong")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Guard", func() {
		var token string

		guardedRequest := func(configure func(*http.Request)) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
			configure(req)
			rec := httptest.NewRecorder()
			handler.Guard(okProbe).ServeHTTP(rec, req)
			return rec
		}

		BeforeEach(func() {
			var err error
			token, err = issuer.Sign("Patricia")
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pass with the marker cookie and a prefixed token cookie", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: auth.SessionActiveValue})
				req.AddCookie(&http.Cookie{Name: auth.CookieAccessToken, Value: "bearer " + token})
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should strip the bearer prefix case insensitively", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: auth.SessionActiveValue})
				req.AddCookie(&http.Cookie{Name: auth.CookieAccessToken, Value: "Bearer " + token})
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should fall back to the Authorization header", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: auth.SessionActiveValue})
				req.Header.Set("Authorization", "Bearer "+token)
			})
			Expect(rec.Code).To(Equal(http.StatusOK))
		})

		It("should reject without the session marker even with a valid token", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieAccessToken, Value: "bearer " + token})
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a wrong marker value", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: "yes"})
				req.AddCookie(&http.Cookie{Name: auth.CookieAccessToken, Value: "bearer " + token})
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject the marker alone without any token", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: auth.SessionActiveValue})
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject an expired token", func() {
			expired, err := auth.NewTokenIssuer("test-secret", -time.Minute).Sign("Patricia")
			Expect(err).NotTo(HaveOccurred())

			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: auth.SessionActiveValue})
				req.AddCookie(&http.Cookie{Name: auth.CookieAccessToken, Value: "bearer " + expired})
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a tampered token", func() {
			rec := guardedRequest(func(req *http.Request) {
				req.AddCookie(&http.Cookie{Name: auth.CookieSessionActive, Value: auth.SessionActiveValue})
				req.AddCookie(&http.Cookie{Name: auth.CookieAccessToken, Value: "bearer " + token + "x"})
			})
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("Logout", func() {
		It("should clear both cookies", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
			rec := httptest.NewRecorder()
			handler.Logout(rec, req)
			Expect(rec.Code).To(Equal(http.StatusNoContent))

			for _, c := range rec.Result().Cookies() {
				Expect(c.MaxAge).To(BeNumerically("<", 0))
				Expect(c.Value).To(BeEmpty())
			}
		})
	})
})

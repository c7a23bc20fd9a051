package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vadimbarashkov/url-shortener/internal/config"
	"github.com/vadimbarashkov/url-shortener/internal/shortcode"
)

type AppTestSuite struct {
	suite.Suite
	app    *App
	server *httptest.Server
	e      *httpexpect.Expect
}

func (suite *AppTestSuite) SetupTest() {
	cfg, err := config.Load("")
	suite.Require().NoError(err)

	suite.app, err = New(context.Background(), cfg, WithLogWriter(io.Discard))
	suite.Require().NoError(err)

	suite.server = httptest.NewServer(suite.app.Handler())
	suite.e = httpexpect.WithConfig(httpexpect.Config{
		BaseURL:  suite.server.URL,
		Reporter: httpexpect.NewAssertReporter(suite.T()),
		Client: &http.Client{
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	})
}

func (suite *AppTestSuite) TearDownTest() {
	suite.server.Close()
}

func (suite *AppTestSuite) shorten(originalURL string) string {
	shortURL := suite.e.POST("/shorten").
		WithJSON(map[string]string{"original_url": originalURL}).
		Expect().
		Status(http.StatusCreated).
		JSON().Object().
		Value("short_url").String().Raw()

	suite.Require().True(strings.HasPrefix(shortURL, "http://localhost:8080/"), shortURL)

	return strings.TrimPrefix(shortURL, "http://localhost:8080/")
}

func (suite *AppTestSuite) TestShortenRedirectAnalytics() {
	code := suite.shorten("https://example.com/a")

	suite.Equal(shortcode.Candidate("https://example.com/a", 0), code)

	suite.e.GET("/" + code).
		Expect().
		Status(http.StatusFound).
		Header("Location").IsEqual("https://example.com/a")

	records := suite.e.GET("/analytics/" + code).
		Expect().
		Status(http.StatusOK).
		JSON().Array()

	records.Length().IsEqual(1)
	records.Value(0).String().
		Match(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} 127\.0\.0\.1:\d+$`)
}

func (suite *AppTestSuite) TestAnalyticsOrder() {
	code := suite.shorten("https://example.com/order")

	for _, ip := range []string{"198.51.100.1", "198.51.100.2", "198.51.100.3"} {
		suite.e.GET("/"+code).
			WithHeader("X-Real-IP", ip).
			Expect().
			Status(http.StatusFound)
	}

	records := suite.e.GET("/analytics/" + code).
		Expect().
		Status(http.StatusOK).
		JSON().Array()

	records.Length().IsEqual(3)
	records.Value(0).String().HasSuffix(" 198.51.100.1")
	records.Value(1).String().HasSuffix(" 198.51.100.2")
	records.Value(2).String().HasSuffix(" 198.51.100.3")
}

func (suite *AppTestSuite) TestSameURLTwice() {
	first := suite.shorten("https://example.com/twice")
	second := suite.shorten("https://example.com/twice")

	suite.NotEqual(first, second)
	suite.Equal(shortcode.Candidate("https://example.com/twice", 1), second)

	for _, code := range []string{first, second} {
		suite.e.GET("/" + code).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual("https://example.com/twice")
	}
}

func (suite *AppTestSuite) TestGenerationExhausted() {
	for range shortcode.MaxAttempts {
		suite.shorten("https://example.com/exhaust")
	}

	suite.e.POST("/shorten").
		WithJSON(map[string]string{"original_url": "https://example.com/exhaust"}).
		Expect().
		Status(http.StatusInternalServerError).
		JSON().Object().
		HasValue("status", "error")
}

func (suite *AppTestSuite) TestNegativePaths() {
	suite.e.POST("/shorten").
		WithJSON(map[string]string{}).
		Expect().
		Status(http.StatusBadRequest)

	suite.e.GET("/ffffffff").
		Expect().
		Status(http.StatusNotFound)

	suite.e.GET("/analytics/ffffffff").
		Expect().
		Status(http.StatusNotFound)

	code := suite.shorten("https://example.com/unvisited")

	suite.e.GET("/analytics/" + code).
		Expect().
		Status(http.StatusNotFound)
}

func (suite *AppTestSuite) TestConcurrentShortens() {
	const k = 32

	codes := make([]string, k)

	var wg sync.WaitGroup
	for i := range k {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := http.Post(suite.server.URL+"/shorten", "application/json",
				strings.NewReader(fmt.Sprintf(`{"original_url":"https://example.com/k/%d"}`, i)))
			if !assert.NoError(suite.T(), err) {
				return
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if assert.NoError(suite.T(), err) && assert.Equal(suite.T(), http.StatusCreated, resp.StatusCode) {
				codes[i] = string(body)
			}
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, k)
	for i, body := range codes {
		code := shortCodeFromBody(suite.T(), body)
		suite.False(seen[code], code)
		seen[code] = true

		suite.e.GET("/" + code).
			Expect().
			Status(http.StatusFound).
			Header("Location").IsEqual(fmt.Sprintf("https://example.com/k/%d", i))
	}

	suite.e.GET("/health").
		Expect().
		Status(http.StatusOK).
		JSON().Object().
		HasValue("urls", k).
		HasValue("instance_id", suite.app.InstanceID())
}

func shortCodeFromBody(t *testing.T, body string) string {
	t.Helper()

	const prefix = `{"short_url":"http://localhost:8080/`

	require.True(t, strings.HasPrefix(body, prefix), body)
	code := strings.TrimSuffix(strings.TrimSpace(strings.TrimPrefix(body, prefix)), `"}`)
	require.True(t, shortcode.IsValid(code), code)

	return code
}

func (suite *AppTestSuite) TestInstanceIDHeader() {
	suite.e.GET("/").
		Expect().
		Status(http.StatusOK).
		Header("X-Instance-ID").IsEqual(suite.app.InstanceID())
}

func TestApp(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func TestApp_Run(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.HTTPServer.Port = 0

	a, err := New(context.Background(), cfg, WithLogWriter(io.Discard))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

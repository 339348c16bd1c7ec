package attribution

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/NestAway/go-utm/internal/domain"
)

var testNow = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func fixedOptions(opts ...Option) Options {
	return NewOptions(append([]Option{WithClock(func() time.Time { return testNow })}, opts...)...)
}

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		target  string
		referer string
		cookies map[string]string
		want    domain.Attribution
	}{
		{
			name:   "nothing observed",
			target: "/landing",
			want:   domain.Attribution{},
		},
		{
			name:   "fresh parameters without cookies",
			target: "/landing?utm_source=google&utm_medium=cpc",
			want: domain.Attribution{
				Source:      "google",
				Medium:      "cpc",
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/landing",
			},
		},
		{
			name:   "all five dimensions",
			target: "/p?utm_source=news&utm_medium=email&utm_term=shoes&utm_content=hero&utm_campaign=spring",
			want: domain.Attribution{
				Source:      "news",
				Medium:      "email",
				Term:        "shoes",
				Content:     "hero",
				Campaign:    "spring",
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/p",
			},
		},
		{
			name:   "parameters win over cookies per field",
			target: "/offers?utm_source=bing",
			cookies: map[string]string{
				CookieSource:   "google",
				CookieMedium:   "cpc",
				CookieCampaign: "winter",
			},
			want: domain.Attribution{
				Source:      "bing",
				Medium:      "cpc",
				Campaign:    "winter",
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/offers",
			},
		},
		{
			name:    "referer without stored origin",
			target:  "/",
			referer: "https://news.example.com/article",
			want: domain.Attribution{
				From:        "https://news.example.com/article",
				Time:        testNow.Unix(),
				LandingPage: "/",
			},
		},
		{
			name:    "stored origin wins over referer",
			target:  "/pricing",
			referer: "https://search.example.com/",
			cookies: map[string]string{CookieFrom: "https://first.example.com/"},
			want: domain.Attribution{
				From:        "https://first.example.com/",
				Time:        testNow.Unix(),
				LandingPage: "/pricing",
			},
		},
		{
			name:    "stored time and landing page are refreshed",
			target:  "/second",
			cookies: map[string]string{CookieSource: "google", CookieTime: "1600000000", CookieLanding: "/first"},
			want: domain.Attribution{
				Source:      "google",
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/second",
			},
		},
		{
			name:   "present empty parameter overrides cookie",
			target: "/?utm_source=&utm_medium=cpc",
			cookies: map[string]string{
				CookieSource: "google",
				CookieMedium: "email",
			},
			want: domain.Attribution{
				Medium:      "cpc",
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/",
			},
		},
		{
			name:    "empty parameter with only a cookie",
			target:  "/?utm_source=",
			cookies: map[string]string{CookieSource: "google"},
			want: domain.Attribution{
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/",
			},
		},
		{
			name:   "empty parameter alone is not attribution",
			target: "/?utm_source=",
			want:   domain.Attribution{},
		},
		{
			name:   "repeated parameter keeps the last value",
			target: "/?utm_source=a&utm_source=b",
			want: domain.Attribution{
				Source:      "b",
				From:        domain.DirectOrigin,
				Time:        testNow.Unix(),
				LandingPage: "/",
			},
		},
		{
			name:    "escaped cookie values are decoded",
			target:  "/",
			cookies: map[string]string{CookieFrom: "https%3A%2F%2Fblog.example.com%2F%3Fp%3D1"},
			want: domain.Attribution{
				From:        "https://blog.example.com/?p=1",
				Time:        testNow.Unix(),
				LandingPage: "/",
			},
		},
		{
			name:    "time and landing cookies alone are not attribution",
			target:  "/",
			cookies: map[string]string{CookieTime: "1600000000", CookieLanding: "/first"},
			want:    domain.Attribution{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.target, http.NoBody)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			for name, value := range tt.cookies {
				req.AddCookie(&http.Cookie{Name: name, Value: value})
			}

			got := Resolve(req, fixedOptions())
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolve_UsesClock(t *testing.T) {
	t.Parallel()

	later := testNow.Add(2 * time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/?utm_source=google", http.NoBody)

	got := Resolve(req, NewOptions(WithClock(func() time.Time { return later })))
	if got.Time != later.Unix() {
		t.Fatalf("Time = %d, want %d", got.Time, later.Unix())
	}
}

func newTaggedRequest() *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/?utm_source=google&utm_medium=cpc", http.NoBody)
	req.AddCookie(&http.Cookie{Name: CookieSource, Value: "bing"})
	req.AddCookie(&http.Cookie{Name: CookieFrom, Value: "https%3A%2F%2Fexample.com%2F"})

	return req
}

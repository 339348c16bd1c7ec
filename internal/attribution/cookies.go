package attribution

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/NestAway/go-utm/internal/domain"
)

// Cookies renders the non-empty fields of a as response cookies, in the order
// source, medium, term, content, campaign, from, time, landing page.
// Values are query-escaped, matching what gin.Context.Cookie unescapes.
func Cookies(a domain.Attribution, opts Options) []*http.Cookie {
	var ts string
	if a.Time != 0 {
		ts = strconv.FormatInt(a.Time, 10)
	}

	values := [...]struct {
		name  string
		value string
	}{
		{CookieSource, a.Source},
		{CookieMedium, a.Medium},
		{CookieTerm, a.Term},
		{CookieContent, a.Content},
		{CookieCampaign, a.Campaign},
		{CookieFrom, a.From},
		{CookieTime, ts},
		{CookieLanding, a.LandingPage},
	}

	ttl := opts.ttl()
	expires := opts.now().Add(ttl)

	cookies := make([]*http.Cookie, 0, len(values))
	for _, v := range values {
		if v.value == "" {
			continue
		}

		cookies = append(cookies, &http.Cookie{
			Name:    v.name,
			Value:   url.QueryEscape(v.value),
			Path:    CookiePath,
			Domain:  opts.Domain,
			Expires: expires,
			MaxAge:  int(ttl.Seconds()),
		})
	}

	return cookies
}

// Bake adds the cookies for a to h as Set-Cookie headers.
func Bake(h http.Header, a domain.Attribution, opts Options) {
	for _, c := range Cookies(a, opts) {
		if v := c.String(); v != "" {
			h.Add("Set-Cookie", v)
		}
	}
}

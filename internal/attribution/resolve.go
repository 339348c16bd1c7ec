package attribution

import (
	"net/http"
	"net/url"

	"github.com/NestAway/go-utm/internal/domain"
)

// Resolve builds the attribution record for r.
//
// A utm_* parameter that is present wins over its cookie even when empty;
// a repeated parameter yields its last value. The zero record is returned
// when r carries no non-empty UTM value, no Referer and no stored origin.
func Resolve(r *http.Request, opts Options) domain.Attribution {
	query := r.URL.Query()
	observed := false

	pick := func(param, cookie string) string {
		stored := cookieValue(r, cookie)
		if stored != "" {
			observed = true
		}

		v, ok := lastParam(query, param)
		if !ok {
			return stored
		}
		if v != "" {
			observed = true
		}

		return v
	}

	rec := domain.Attribution{
		Source:   pick(ParamSource, CookieSource),
		Medium:   pick(ParamMedium, CookieMedium),
		Term:     pick(ParamTerm, CookieTerm),
		Content:  pick(ParamContent, CookieContent),
		Campaign: pick(ParamCampaign, CookieCampaign),
	}

	referer := r.Referer()
	storedFrom := cookieValue(r, CookieFrom)

	if !observed && referer == "" && storedFrom == "" {
		return domain.Attribution{}
	}

	rec.From = resolveFrom(referer, storedFrom)
	rec.Time = opts.now().Unix()
	rec.LandingPage = r.URL.Path

	return rec
}

// lastParam reports whether name is present in q and returns its last value.
// A present but empty parameter wins over the stored cookie.
func lastParam(q url.Values, name string) (string, bool) {
	vs, ok := q[name]
	if !ok || len(vs) == 0 {
		return "", false
	}

	return vs[len(vs)-1], true
}

// resolveFrom prefers a stored origin over the current Referer so the first
// known origin survives later navigation.
func resolveFrom(referer, storedFrom string) string {
	switch {
	case storedFrom != "":
		return storedFrom
	case referer != "":
		return referer
	default:
		return domain.DirectOrigin
	}
}

// cookieValue returns the unescaped value of the named cookie, or "" if absent.
// Values that fail to unescape are returned as sent.
func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}

	if v, err := url.QueryUnescape(c.Value); err == nil {
		return v
	}

	return c.Value
}

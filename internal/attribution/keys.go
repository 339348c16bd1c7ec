package attribution

// Query parameters read from the request URL.
const (
	ParamSource   = "utm_source"
	ParamMedium   = "utm_medium"
	ParamTerm     = "utm_term"
	ParamContent  = "utm_content"
	ParamCampaign = "utm_campaign"
)

// Cookies read from the request and baked into the response.
const (
	CookieSource   = "u_source"
	CookieMedium   = "u_medium"
	CookieTerm     = "u_term"
	CookieContent  = "u_content"
	CookieCampaign = "u_campaign"
	CookieFrom     = "u_from"
	CookieTime     = "u_time"
	CookieLanding  = "u_lp"
)

// Keys under which the resolved record is exposed to downstream handlers.
const (
	KeySource   = "utm.source"
	KeyMedium   = "utm.medium"
	KeyTerm     = "utm.term"
	KeyContent  = "utm.content"
	KeyCampaign = "utm.campaign"
	KeyFrom     = "utm.from"
	KeyTime     = "utm.time"
	KeyLanding  = "utm.lp"
)

// CookiePath is the path every attribution cookie is scoped to.
const CookiePath = "/"

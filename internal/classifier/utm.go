package classifier

import "linkstats/internal/domain"

// UTM query parameter names.
const (
	ParamUTMSource   = "utm_source"
	ParamUTMMedium   = "utm_medium"
	ParamUTMCampaign = "utm_campaign"
	ParamUTMTerm     = "utm_term"
	ParamUTMContent  = "utm_content"
)

// ExtractUTM reads the five UTM parameters from params. A missing or empty
// parameter yields a nil field; the record itself is always complete.
func ExtractUTM(params map[string]string) domain.UTM {
	return domain.UTM{
		Source:   param(params, ParamUTMSource),
		Medium:   param(params, ParamUTMMedium),
		Campaign: param(params, ParamUTMCampaign),
		Term:     param(params, ParamUTMTerm),
		Content:  param(params, ParamUTMContent),
	}
}

func param(params map[string]string, key string) *string {
	v, ok := params[key]
	if !ok || v == "" {
		return nil
	}
	return &v
}

package hebcal

import "hebdate/internal/platform/config"

// FromConfig reads client options under c; HEBCAL_URL, HEBCAL_TIMEOUT, HEBCAL_RPS and HEBCAL_BURST
func FromConfig(c config.Conf) Options {
	hc := c.Prefix("HEBCAL_")
	return Options{
		BaseURL:   hc.MayURL("URL", baseURLDefault).String(),
		UserAgent: hc.MayString("USER_AGENT", defaultUA),
		Timeout:   hc.MayDuration("TIMEOUT", defaultTimeout),
		RPS:       hc.MayFloat64("RPS", defaultRPS),
		Burst:     hc.MayInt("BURST", defaultBurst),
	}
}

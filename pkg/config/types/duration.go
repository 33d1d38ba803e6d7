package types

import (
	"time"
)

// Duration is a time.Duration that marshals to and from its string form so it
// reads naturally in a YAML manifest, e.g. "24h" or "90s".
type Duration time.Duration

func (d Duration) AsTimeDuration() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

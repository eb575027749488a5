package evtimer

import (
	"testing"
	"time"
)

func TestTickRateConversions(t *testing.T) {
	r := DefaultTickRate
	tests := []struct {
		d      time.Duration
		res    Resolution
		ticks  uint64
		rest   time.Duration
		roundU uint64
	}{
		{0, Coarse, 0, 0, 1},
		{time.Microsecond, Coarse, 0, time.Microsecond, 1},
		{1400 * time.Microsecond, Coarse, 1, 400 * time.Microsecond, 1},
		{1500 * time.Microsecond, Coarse, 1, 500 * time.Microsecond, 2},
		{2 * time.Second, Coarse, 2000, 0, 2000},
		{1500 * time.Nanosecond, Fine, 1, 500 * time.Nanosecond, 2},
		{3 * time.Millisecond, Fine, 3000, 0, 3000},
	}
	for i, tc := range tests {
		ticks, rest := r.Ticks(tc.d, tc.res)
		if ticks.Val() != tc.ticks || rest != tc.rest {
			t.Errorf("test %d: Ticks(%s, %s) = %d, %s; expected %d, %s\n",
				i, tc.d, tc.res, ticks.Val(), rest, tc.ticks, tc.rest)
		}
		if u := r.TicksRoundUp(tc.d, tc.res).Val(); u != tc.roundU {
			t.Errorf("test %d: TicksRoundUp(%s, %s) = %d; expected %d\n",
				i, tc.d, tc.res, u, tc.roundU)
		}
		if d := r.Duration(ticks, tc.res); d != tc.d-tc.rest {
			t.Errorf("test %d: Duration(%d, %s) = %s; expected %s\n",
				i, ticks.Val(), tc.res, d, tc.d-tc.rest)
		}
	}
}

func TestParseResolution(t *testing.T) {
	tests := []struct {
		s   string
		res Resolution
		err error
	}{
		{"coarse", Coarse, nil},
		{" Fine ", Fine, nil},
		{"ms", Coarse, nil},
		{"us", Fine, nil},
		{"ns", Coarse, ErrInvalidResolution},
	}
	for _, tc := range tests {
		res, err := ParseResolution(tc.s)
		if res != tc.res || err != tc.err {
			t.Errorf("ParseResolution(%q) = %s, %v; expected %s, %v\n",
				tc.s, res, err, tc.res, tc.err)
		}
		if err == nil && res.String() != tc.res.String() {
			t.Errorf("String() mismatch for %q\n", tc.s)
		}
	}
	if Resolution(7).Valid() || Resolution(7).String() != "invalid" {
		t.Errorf("Resolution(7) should be invalid\n")
	}
}

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExit(t *testing.T) {
	cases := map[string]struct {
		args       []string
		lastStatus int
		want       Outcome
	}{
		"no args uses last status": {
			lastStatus: 5,
			want:       Terminate(5),
		},
		"explicit status": {
			args:       []string{"42"},
			lastStatus: 5,
			want:       Terminate(42),
		},
		"not a number": {
			args:       []string{"notanumber"},
			lastStatus: 5,
			want:       Terminate(0),
		},
		"negative": {
			args: []string{"-1"},
			want: Terminate(-1),
		},
		"too many args uses last status": {
			args:       []string{"1", "2"},
			lastStatus: 9,
			want:       Terminate(9),
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			ctx, out := newTestContext(t)
			ctx.LastStatus = tc.lastStatus

			assert.Equal(t, tc.want, Exit(ctx, tc.args))
			assert.Empty(t, out.String())
		})
	}
}

package usecase

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeSVG(t *testing.T) {
	tests := []struct {
		name       string
		svg        string
		want       string
		notContain []string
		wantErr    bool
	}{
		{
			name: "clean svg kept",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="red"/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10" fill="red"></rect></svg>`,
		},
		{
			name:       "script removed",
			svg:        `<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script><circle r="1"/></svg>`,
			want:       `<svg xmlns="http://www.w3.org/2000/svg"><circle r="1"></circle></svg>`,
			notContain: []string{"script", "alert"},
		},
		{
			name:       "event handlers removed",
			svg:        `<svg xmlns="http://www.w3.org/2000/svg" onload="alert(1)"><rect onClick="x()" width="1"/></svg>`,
			want:       `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1"></rect></svg>`,
			notContain: []string{"onload", "onClick"},
		},
		{
			name:       "foreign object removed",
			svg:        `<svg xmlns="http://www.w3.org/2000/svg"><foreignObject><div xmlns="http://www.w3.org/1999/xhtml">x</div></foreignObject></svg>`,
			want:       `<svg xmlns="http://www.w3.org/2000/svg"></svg>`,
			notContain: []string{"div"},
		},
		{
			name:       "javascript links removed",
			svg:        `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><a xlink:href=" java&#x09;script:alert(1)"><text>hi</text></a><image href="https://example.com/a.png"/></svg>`,
			want:       `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"><a><text>hi</text></a><image href="https://example.com/a.png"></image></svg>`,
			notContain: []string{"javascript"},
		},
		{
			name:       "href animation removed",
			svg:        `<svg xmlns="http://www.w3.org/2000/svg"><a href="https://example.com"><animate attributeName="href" values="https://x;javascript:alert(1)"/><text>hi</text></a></svg>`,
			want:       `<svg xmlns="http://www.w3.org/2000/svg"><a href="https://example.com"><text>hi</text></a></svg>`,
			notContain: []string{"animate", "javascript"},
		},
		{
			name:       "handler animation removed",
			svg:        `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1"><set attributeName="onmouseover" to="alert(2)"/></rect></svg>`,
			want:       `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1"></rect></svg>`,
			notContain: []string{"set", "alert"},
		},
		{
			name: "javascript in values list removed",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg"><animate attributeName="fill" values="red; javascript:alert(3)"/><animate attributeName="fill" values="red;blue"/></svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg"><animate attributeName="fill"></animate><animate attributeName="fill" values="red;blue"></animate></svg>`,
		},
		{
			name: "text escaped",
			svg:  `<?xml version="1.0"?><!DOCTYPE svg><svg><text>a &amp; b &lt;c&gt;</text><!-- comment --></svg>`,
			want: `<?xml version="1.0"?><svg><text>a &amp; b &lt;c&gt;</text></svg>`,
		},
		{
			name:    "unbalanced",
			svg:     `<svg><g></svg>`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := SanitizeSVG([]byte(tt.svg))
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, string(got))
			for _, s := range tt.notContain {
				req.NotContains(string(got), s)
			}
		})
	}
}

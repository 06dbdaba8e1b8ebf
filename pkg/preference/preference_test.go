package preference

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsAgree(t *testing.T) {
	tests := []struct {
		name   string
		list   []string
		header string
	}{
		{"single preference", []string{"text/xml"}, "text/xml"},
		{"multiple preferences", []string{"text/xml", "text/plain"}, "text/xml,text/plain"},
		{"multiple preferences with qvalues", []string{"text/xml;q=1.0", "text/plain;q=0.9"}, "text/xml;q=1.0,text/plain;q=0.9"},
		{"qvalues reordered", []string{"text/xml;q=1.0", "text/plain;q=0.9"}, "text/plain;q=0.9,text/xml;q=1.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, FromList(tt.list).Equal(Parse(tt.header)))
			assert.True(t, Parse(tt.header).Equal(FromList(tt.list)))
		})
	}
}

func TestEqual(t *testing.T) {
	t.Run("different entries", func(t *testing.T) {
		assert.False(t, Parse("text/xml").Equal(Parse("text/plain")))
	})

	t.Run("different parameters", func(t *testing.T) {
		assert.False(t, Parse("text/html;level=1").Equal(Parse("text/html;level=2")))
	})

	t.Run("explicit quality differs from implicit", func(t *testing.T) {
		assert.False(t, Parse("text/xml;q=1.0").Equal(Parse("text/xml")))
	})

	t.Run("different length", func(t *testing.T) {
		assert.False(t, Parse("text/xml, text/plain").Equal(Parse("text/xml")))
	})

	t.Run("precision does not matter", func(t *testing.T) {
		assert.True(t, Parse("text/*, text/html").Equal(Parse("text/*, text/html", WithPrecision(8))))
	})

	t.Run("nil", func(t *testing.T) {
		var p *Preference
		assert.True(t, p.Equal(nil))
		assert.False(t, p.Equal(Parse("text/xml")))
		assert.False(t, Parse("text/xml").Equal(nil))
	})
}

func TestAll(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   []string
	}{
		{"single preference", "text/xml", []string{"text/xml"}},
		{"separated by comma", "text/xml,text/plain", []string{"text/xml", "text/plain"}},
		{"separated by comma and space", "text/xml, text/plain", []string{"text/xml", "text/plain"}},
		{"with qvalues", "text/xml;q=1.0, text/plain;q=0.9", []string{"text/xml", "text/plain"}},
		{"with qvalues and spaces", "text/xml; q=1.0, text/plain; q=0.9", []string{"text/xml", "text/plain"}},
		{"reordered", "text/xml;q=0.9, text/plain;q=1.0", []string{"text/plain", "text/xml"}},
		{
			"rfc2616 more specific ranges override",
			"text/*, text/html, text/html;level=1, */*",
			[]string{"text/html;level=1", "text/html", "text/*", "*/*"},
		},
		{
			"explicit quality dominates specificity",
			"text/html;q=0.9,application/xhtml+xml;q=0.9,application/xml;q=0.9,*/*;q=0.8",
			[]string{"text/html", "application/xhtml+xml", "application/xml", "*/*"},
		},
		{
			"semicolon between media ranges",
			"*/*;q=0.1; application/*",
			[]string{"application/*", "*/*"},
		},
		{"malformed entries are dropped", "text, text/html, /, foo/", []string{"text/html"}},
		{"case is normalized", "Text/HTML;Level=1", []string{"text/html;level=1"}},
		{"empty header", "", []string{}},
		{"entirely malformed header", "garbage;;,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.header).All())
		})
	}
}

func TestRanking(t *testing.T) {
	p := Parse("*/*, text/*, text/html, text/html;level=1")
	entries := p.Entries()
	require.Len(t, entries, 4)

	assert.InDelta(t, 1.0001, entries[0].Rank(), 1e-9)
	assert.InDelta(t, 1.0, entries[1].Rank(), 1e-9)
	assert.InDelta(t, 0.9999, entries[2].Rank(), 1e-9)
	assert.InDelta(t, 0.9998, entries[3].Rank(), 1e-9)

	// Ranked view is a permutation of the input positions.
	seen := map[int]bool{}
	for _, e := range entries {
		seen[e.Index()] = true
	}
	assert.Len(t, seen, 4)
}

func TestRankingStableOnTies(t *testing.T) {
	p := Parse("text/plain, text/html, application/json")
	assert.Equal(t, []string{"text/plain", "text/html", "application/json"}, p.All())
}

func TestRankingTiesAcrossBonusAndPenalty(t *testing.T) {
	// type/* with two params and type/subtype with one param share a rank.
	p := Parse("text/*;a=1;b=1;q=0.05, text/html;a=1;q=0.05")
	assert.Equal(t, []string{"text/*;a=1;b=1", "text/html;a=1"}, p.All())

	for i := 1; i <= 1000; i++ {
		q := float64(i) / 1000
		header := fmt.Sprintf("text/*;a=1;b=1;q=%.3f, text/html;a=1;q=%.3f", q, q)
		require.Equal(t, []string{"text/*;a=1;b=1", "text/html;a=1"}, Parse(header).All(), header)

		reversed := fmt.Sprintf("text/html;a=1;q=%.3f, text/*;a=1;b=1;q=%.3f", q, q)
		require.Equal(t, []string{"text/html;a=1", "text/*;a=1;b=1"}, Parse(reversed).All(), reversed)
	}
}

func TestRankingTiesAcrossQuality(t *testing.T) {
	// 0.5 plus one parameter bonus equals 0.5001 at the default precision.
	p := Parse("text/plain;q=0.5001, text/html;level=1;q=0.5")
	assert.Equal(t, []string{"text/plain", "text/html;level=1"}, p.All())

	p = Parse("text/html;level=1;q=0.5, text/plain;q=0.5001")
	assert.Equal(t, []string{"text/html;level=1", "text/plain"}, p.All())
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		candidates []string
		want       string
		wantOK     bool
	}{
		{"exactly matching supported", "text/xml", []string{"text/xml"}, "text/xml", true},
		{"matching one of supported", "text/plain", []string{"text/xml", "text/html", "text/plain"}, "text/plain", true},
		{"best preference matching one of supported", "text/plain;q=0.9, text/html", []string{"text/xml", "text/html", "text/plain"}, "text/html", true},
		{"first preference matching one of supported", "text/plain, text/html", []string{"text/xml", "text/html", "text/plain"}, "text/plain", true},
		{"text any matching one of supported", "text/*", []string{"application/xml", "text/html", "text/plain"}, "text/html", true},
		{"text any matching first of supported", "text/*", []string{"text/plain", "text/html"}, "text/plain", true},
		{"any any matches first of supported", "*/*", []string{"application/xml", "text/html", "text/plain"}, "application/xml", true},
		{"application any matches first of supported", "*/*;q=0.1; application/*", []string{"application/xml", "text/html", "text/plain"}, "application/xml", true},
		{"ie9 default accept", "text/html, application/xhtml+xml, */*", []string{"text/plain", "text/html"}, "text/html", true},
		{"ff11 default accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", []string{"text/plain", "text/html"}, "text/html", true},
		{
			"wikipedia example",
			"text/html; q=1.0, text/*; q=0.8, image/gif; q=0.6, image/jpeg; q=0.6, image/*; q=0.5, */*; q=0.1\n",
			[]string{"text/plain", "text/html"},
			"text/html",
			true,
		},
		{"candidate returned as given", "text/html", []string{"Text/HTML; charset=utf-8"}, "Text/HTML; charset=utf-8", true},
		{"malformed candidate is skipped", "*/*", []string{"html", "text/html"}, "text/html", true},
		{"application json not supported", "application/json", []string{"text/html", "text/plain"}, "", false},
		{"application any not supported", "application/*", []string{"text/html", "text/plain"}, "", false},
		{"empty header", "", []string{"text/html"}, "", false},
		{"no candidates", "*/*", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.header).Match(tt.candidates)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"single preference", "text/xml", "Preference<text/xml>"},
		{"preferences", "text/xml, text/html", "Preference<text/xml, text/html>"},
		{"with qvalue", "text/xml, text/html;q=0.8", "Preference<text/xml, text/html;q=0.8>"},
		{"one point zero qvalue omitted", "text/xml;q=1.0, text/html;q=0.8", "Preference<text/xml, text/html;q=0.8>"},
		{"parameters and qvalue", "text/html;level=1;q=0.5", "Preference<text/html;level=1;q=0.5>"},
		{"empty", "", "Preference<>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.header).String())
		})
	}
}

func TestQualityOf(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		mediaType string
		want      float64
	}{
		{"xml", "text/xml;q=1.0, text/html;q=0.8", "text/xml", 1.0},
		{"html", "text/xml;q=1.0, text/html;q=0.8", "text/html", 0.8},
		{"plain", "text/xml, text/plain", "text/plain", 1.0},
		{"not accepted", "text/xml", "application/json", 0},
		{"empty header", "", "text/html", 0},
		{"malformed type", "*/*", "html", 0},
		{"explicit zero", "text/html;q=0", "text/html", 0},
		{"subtype wildcard at default precision", "text/*", "text/plain", 0.9999},
		{"parameters do not raise quality", "text/html;level=1", "text/html", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.header).QualityOf(tt.mediaType))
		})
	}
}

func TestQualityWithPrecision(t *testing.T) {
	assert.Equal(t, 0.99999, Parse("text/*").QualityWithPrecision("text/plain", 6))
	assert.Equal(t, 0.9998, Parse("*/*").QualityWithPrecision("text/plain", 5))
	assert.Equal(t, 0.8, Parse("text/html;q=0.8").QualityWithPrecision("text/html", 6))
	assert.Equal(t, 0.9999, Parse("text/*").QualityWithPrecision("text/plain", 1))
	assert.Equal(t, 0.5, Parse("text/html;q=0.5, */*;q=0.1").QualityWithPrecision("text/html", 3))
}

func TestQueriesDoNotMutate(t *testing.T) {
	p := Parse("text/*, text/html;q=0.5, */*;q=0.1")
	all := p.All()
	str := p.String()

	for i := 0; i < 3; i++ {
		got, ok := p.Match([]string{"text/plain", "text/html"})
		assert.True(t, ok)
		assert.Equal(t, "text/plain", got)
		_ = p.QualityWithPrecision("text/plain", 8)
		assert.Equal(t, all, p.All())
		assert.Equal(t, str, p.String())
	}

	entries := p.Entries()
	entries[0].Type = "changed"
	assert.Equal(t, all, p.All())
}

func TestConcurrentQueries(t *testing.T) {
	p := Parse("text/html;level=1, text/html, text/*;q=0.5, */*;q=0.1")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, ok := p.Match([]string{"application/json", "text/html"})
			assert.True(t, ok)
			assert.Equal(t, "text/html", got)
			assert.Equal(t, 0.0998, p.QualityOf("application/json"))
		}()
	}
	wg.Wait()
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, DefaultPrecision, Parse("text/html").Precision())
	assert.Equal(t, 7, Parse("text/html", WithPrecision(7)).Precision())
	assert.Equal(t, DefaultPrecision, Parse("text/html", WithPrecision(0)).Precision())
	assert.Equal(t, 0, Parse("").Len())
	assert.Equal(t, 2, FromList([]string{"text/html", "bogus", "text/plain"}).Len())
}

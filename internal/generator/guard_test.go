package generator

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveGuard(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		namespace string
		want      string
	}{
		{"relative path", "out/res.hpp", "resources", "_RESOURCES_RES_HPP_"},
		{"bare name", "resources.hpp", "resources", "_RESOURCES_RESOURCES_HPP_"},
		{"windows separators", `build\gen\data.h`, "assets", "_ASSETS_DATA_H_"},
		{"spaces and dashes", "my res-file.v2.hpp", "app", "_APP_MY_RES_FILE_V2_HPP_"},
		{"control characters dropped", "re\x01s.h", "ns", "_NS_RES_H_"},
		{"mixed case namespace", "a.h", "myNs", "_MYNS_A_H_"},
		{"all punctuation", "!!.h", "ns", "_NS____H_"},
		{"non-ascii", "données.h", "ns", "_NS_DONN_ES_H_"},
		{"empty namespace segment", "a.h", "\x01\x02", "_RESOURCES_A_H_"},
		{"empty file segment", "dir/", "ns", "_NS_RESOURCES_"},
	}

	ident := regexp.MustCompile(`^[A-Z0-9_]+$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveGuard(tt.output, tt.namespace)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, ident, got)
		})
	}
}

func TestDeriveGuard_Deterministic(t *testing.T) {
	a := DeriveGuard("out/res.hpp", "resources")
	b := DeriveGuard("out/res.hpp", "resources")
	assert.Equal(t, a, b)

	c := DeriveGuard("out/res.hpp", "other")
	assert.Equal(t, "_OTHER_RES_HPP_", c)
	assert.Equal(t, a[len("_RESOURCES"):], c[len("_OTHER"):])
}

package extract

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ExtractTestSuite struct {
	suite.Suite
}

func TestExtractSuite(t *testing.T) {
	suite.Run(t, new(ExtractTestSuite))
}

func (s *ExtractTestSuite) TestExtract() {
	cases := []struct {
		name        string
		description string
		want        string
		wantOK      bool
	}{
		{
			name:        "dashed table code",
			description: "CHUYEN KHOAN TBL-20250810-000123 CAM ON",
			want:        "TBL-20250810-000123",
			wantOK:      true,
		},
		{
			name:        "plain table code stripped by bank",
			description: "TBL20250810000123 NGUYEN VAN A",
			want:        "TBL20250810000123",
			wantOK:      true,
		},
		{
			name:        "dashed order code",
			description: "tt don hang ORD-20250810-000077",
			want:        "ORD-20250810-000077",
			wantOK:      true,
		},
		{
			name:        "plain order code",
			description: "ORD20250810000077 thanh toan",
			want:        "ORD20250810000077",
			wantOK:      true,
		},
		{
			name:        "lowercase input is folded",
			description: "tbl-20250810-000123",
			want:        "TBL-20250810-000123",
			wantOK:      true,
		},
		{
			name:        "vietnamese phrase around the code",
			description: "DAT MON TBL-20250810-000123 BAN 5",
			want:        "TBL-20250810-000123",
			wantOK:      true,
		},
		{
			name:        "generic prefixed reference",
			description: "thanh toan HD202508 cam on",
			want:        "HD202508",
			wantOK:      true,
		},
		{
			name:        "bare digits fallback",
			description: "CK 20250810000123",
			want:        "20250810000123",
			wantOK:      true,
		},
		{
			name:        "table code wins over bare digits",
			description: "TBL-20250810-000123 ref 99999999",
			want:        "TBL-20250810-000123",
			wantOK:      true,
		},
		{
			name:        "no reference at all",
			description: "chuyen tien sinh nhat",
			wantOK:      false,
		},
		{
			name:        "short digit run is not a reference",
			description: "CK 1234567",
			wantOK:      false,
		},
		{
			name:        "empty description",
			description: "",
			wantOK:      false,
		},
	}

	for _, c := range cases {
		s.Run(c.name, func() {
			got, ok := Extract(c.description)
			s.Equal(c.wantOK, ok)
			if c.wantOK {
				s.Equal(c.want, got)
			}
		})
	}
}

func (s *ExtractTestSuite) TestExtractWithPattern() {
	code, pattern, ok := ExtractWithPattern("CK TBL20250810000123")
	s.Require().True(ok)
	s.Equal("TBL20250810000123", code)
	s.Equal("table-plain", pattern)

	_, _, ok = ExtractWithPattern("cam on nhieu")
	s.False(ok)
}

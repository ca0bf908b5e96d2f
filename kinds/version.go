package kinds

import (
	"github.com/cinegraph/rsrc-engine/binio"
	"github.com/cinegraph/rsrc-engine/errors"
	"github.com/cinegraph/rsrc-engine/mactext"
)

// Stage is the release stage byte of a version number record.
type Stage uint8

const (
	StageDev   Stage = 0x20
	StageAlpha Stage = 0x40
	StageBeta  Stage = 0x60
	StageFinal Stage = 0x80
)

func (s Stage) String() string {
	switch s {
	case StageDev:
		return "dev"
	case StageAlpha:
		return "alpha"
	case StageBeta:
		return "beta"
	case StageFinal:
		return "final"
	default:
		return "unknown"
	}
}

// VersionNumber is the fixed 4-byte numeric version record.
type VersionNumber struct {
	Major    uint8
	Minor    uint8
	Stage    Stage
	Revision uint8
}

// Version is a decoded 'vers' resource.
type Version struct {
	Number  VersionNumber
	Country mactext.CountryCode
	Short   string
	Long    string
}

// DecodeVersion decodes a 'vers' resource: the numeric version record, a
// validated country code and two length-prefixed strings.
func DecodeVersion(r *binio.Reader, _ uint32, ctx Context) (*Version, error) {
	var v Version
	var err error

	if v.Number.Major, err = r.ReadU8(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("version", "major").Cause(err).Build()
	}
	if v.Number.Minor, err = r.ReadU8(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("version", "minor").Cause(err).Build()
	}
	stage, err := r.ReadU8()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("version", "stage").Cause(err).Build()
	}
	switch Stage(stage) {
	case StageDev, StageAlpha, StageBeta, StageFinal:
		v.Number.Stage = Stage(stage)
	default:
		return nil, errors.MalformedDiscriminant([]string{"version", "stage"}, uint32(stage))
	}
	if v.Number.Revision, err = r.ReadU8(); err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("version", "revision").Cause(err).Build()
	}

	country, err := r.ReadU16()
	if err != nil {
		return nil, errors.New(errors.PhaseDecode, errors.KindSourceIO).Path("version", "country").Cause(err).Build()
	}
	v.Country = mactext.CountryCode(country)
	if !v.Country.Valid() {
		return nil, errors.MalformedDiscriminant([]string{"version", "country"}, uint32(country))
	}

	if v.Short, err = mactext.ReadPString(r, ctx.Sel); err != nil {
		return nil, wrapStringErr(err, "version", "short")
	}
	if v.Long, err = mactext.ReadPString(r, ctx.Sel); err != nil {
		return nil, wrapStringErr(err, "version", "long")
	}
	return &v, nil
}

// wrapStringErr keeps encoding errors intact and tags I/O failures with the
// field path.
func wrapStringErr(err error, path ...string) error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	return errors.New(errors.PhaseDecode, errors.KindSourceIO).Path(path...).Cause(err).Build()
}

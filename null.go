package husk

import (
	"time"

	"github.com/shopspring/decimal"
)

// Null is the absent-value sentinel. Every navigation, search and
// projection operation on it returns Null (or the zero value for scalar-
// returning operations) and never an error, so a missing optional field
// degrades softly and only escalates when the caller demands a definite
// result with One, All or a typed accessor on the result.
var Null Husker = nullHusker{}

type nullHusker struct{}

func (nullHusker) Selection(...any) (*ListHusker, error)   { return EmptyList, nil }
func (nullHusker) One(...any) (Husker, error)              { return Null, nil }
func (nullHusker) Some(...any) (Husker, error)             { return Null, nil }
func (nullHusker) First(...any) (Husker, error)            { return Null, nil }
func (nullHusker) Last(...any) (Husker, error)             { return Null, nil }
func (nullHusker) Any(...any) (Husker, error)              { return Null, nil }
func (nullHusker) All(...any) (*ListHusker, error)         { return EmptyList, nil }
func (nullHusker) OneOf(...any) (Husker, error)            { return Null, nil }
func (nullHusker) SomeOf(...any) (Husker, error)           { return Null, nil }
func (nullHusker) FirstOf(...any) (Husker, error)          { return Null, nil }
func (nullHusker) AnyOf(...any) (Husker, error)            { return Null, nil }
func (nullHusker) AllOf(...any) (*ListHusker, error)       { return EmptyList, nil }
func (nullHusker) SelectionOf(...any) (*ListHusker, error) { return EmptyList, nil }

func (nullHusker) Text() Husker      { return Null }
func (nullHusker) Multiline() Husker { return Null }

func (nullHusker) JSON() (Husker, error)                          { return Null, nil }
func (nullHusker) Str() (string, error)                           { return "", nil }
func (nullHusker) Int() (int64, error)                            { return 0, nil }
func (nullHusker) Float() (float64, error)                        { return 0, nil }
func (nullHusker) Decimal() (decimal.Decimal, error)              { return decimal.Zero, nil }
func (nullHusker) Date(...string) (time.Time, error)              { return time.Time{}, nil }
func (nullHusker) Datetime(...string) (time.Time, error)          { return time.Time{}, nil }
func (nullHusker) Lookup(map[string]string, ...string) (string, error) {
	return "", nil
}

func (nullHusker) Map(func(Husker) Husker) Husker  { return Null }
func (nullHusker) Filter(func(Husker) bool) Husker { return Null }

// Element-style accessors, so chains written against elements keep
// collapsing once a step has gone missing.

func (nullHusker) Attr(string) (Husker, error)      { return Null, nil }
func (nullHusker) Attrib(string) Husker             { return Null }
func (nullHusker) AttribOr(string, Husker) Husker   { return Null }
func (nullHusker) JS(bool) Husker                   { return Null }
func (nullHusker) Parent() Husker                   { return Null }
func (nullHusker) Next() Husker                     { return Null }
func (nullHusker) Prev() Husker                     { return Null }
func (nullHusker) Head() Husker                     { return Null }
func (nullHusker) Tail() Husker                     { return Null }
func (nullHusker) Tag() Husker                      { return Null }
func (nullHusker) Children() *ListHusker            { return EmptyList }
func (nullHusker) List() (*ListHusker, error)       { return EmptyList, nil }
func (nullHusker) Join(string) (Husker, error)      { return Null, nil }
func (nullHusker) Sub(string, string, ...string) (Husker, error) {
	return Null, nil
}
func (nullHusker) Lower() Husker { return Null }
func (nullHusker) Upper() Husker { return Null }

func (nullHusker) Raw() any              { return nil }
func (nullHusker) Ok() bool              { return false }
func (nullHusker) ID() string            { return "NullHusker" }
func (nullHusker) ReprSpec(spec ...any) string {
	return reprSpec(spec...)
}
func (nullHusker) ReprValue() string { return "<Null>" }
func (nullHusker) String() string    { return "<Null>" }

package assemblers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SourceBasic struct {
	Name  string
	Age   int
	Email string
}

type DestBasic struct {
	Name  string
	Age   int
	Email string
}

func TestFieldMapper_BasicFieldCopy(t *testing.T) {
	m := NewFieldMapper()

	src := &SourceBasic{Name: "John Doe", Age: 30, Email: "john@example.com"}
	dst := &DestBasic{}

	require.NoError(t, m.Map(src, dst))
	assert.Equal(t, src.Name, dst.Name)
	assert.Equal(t, src.Age, dst.Age)
	assert.Equal(t, src.Email, dst.Email)
}

func TestFieldMapper_ErrorCases(t *testing.T) {
	m := NewFieldMapper()
	var nilSrc *SourceBasic
	n := 5

	assert.Error(t, m.Map(nil, &DestBasic{}))
	assert.Error(t, m.Map(&SourceBasic{}, nil))
	assert.Error(t, m.Map(SourceBasic{}, &DestBasic{}))
	assert.Error(t, m.Map(nilSrc, &DestBasic{}))
	assert.Error(t, m.Map(&n, &DestBasic{}))
}

func TestFieldMapper_ConvertibleTypes(t *testing.T) {
	type Celsius float64
	type src struct {
		Temp  float32
		Count int32
		Label int
	}
	type dst struct {
		Temp  Celsius
		Count int64
		Label string
	}

	m := NewFieldMapper()
	d := dst{}
	require.NoError(t, m.Map(&src{Temp: 21.5, Count: 3, Label: 65}, &d))
	assert.Equal(t, Celsius(21.5), d.Temp)
	assert.Equal(t, int64(3), d.Count)
	assert.Empty(t, d.Label, "integers are never converted to strings")
}

func TestFieldMapper_IncompatibleTypesLogged(t *testing.T) {
	var logged []string
	logger := funcr.New(func(prefix, args string) {
		logged = append(logged, prefix+" "+args)
	}, funcr.Options{Verbosity: 1})

	type src struct{ When []string }
	type dst struct{ When map[string]string }

	m := NewFieldMapper(WithLogger(logger))
	d := dst{}
	require.NoError(t, m.Map(&src{When: []string{"now"}}, &d))
	assert.Nil(t, d.When)
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "skipping incompatible field")
	assert.Contains(t, logged[0], "When")
}

type SourceWithConverter struct {
	Temperature float64
}

type DestWithConverter struct {
	Temperature int
}

func TestFieldMapper_WithConverter(t *testing.T) {
	m := NewFieldMapper()
	m.RegisterConverter("Temperature", func(src any) (any, error) {
		temp, ok := src.(float64)
		if !ok {
			return nil, fmt.Errorf("expected float64, got %T", src)
		}
		return int(temp), nil
	})

	dst := &DestWithConverter{}
	require.NoError(t, m.Map(&SourceWithConverter{Temperature: 25.7}, dst))
	assert.Equal(t, 25, dst.Temperature)
}

func TestFieldMapper_ConverterError(t *testing.T) {
	m := NewFieldMapper()
	m.RegisterConverter("Temperature", func(any) (any, error) { return nil, assert.AnError })

	err := m.Map(&SourceWithConverter{Temperature: 1}, &DestWithConverter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "Temperature")
}

func TestFieldMapper_ConverterWrongType(t *testing.T) {
	m := NewFieldMapper()
	m.RegisterConverter("Temperature", func(any) (any, error) { return "hot", nil })

	err := m.Map(&SourceWithConverter{Temperature: 1}, &DestWithConverter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected int")
}

func TestFieldMapper_ConverterReturnsNil(t *testing.T) {
	type S struct {
		Name  string
		Value *int
	}
	type D struct {
		Name  string
		Value *int
	}
	m := NewFieldMapper()
	m.RegisterConverter("Value", func(any) (any, error) { return nil, nil })

	v := 42
	d := D{Value: new(int)}
	require.NoError(t, m.Map(&S{Name: "Test", Value: &v}, &d))
	assert.Equal(t, "Test", d.Name)
	assert.Nil(t, d.Value)
}

func TestFieldMapper_ScopedConvertersPrecedence(t *testing.T) {
	type src struct{ Name string }
	type dst struct{ Name string }
	type other struct{ Name string }

	m := NewFieldMapper()
	m.RegisterConverter("Name", MapString(strings.ToUpper))
	m.RegisterConverterFor(dst{}, "Name", MapString(strings.ToLower))
	m.RegisterConverterForPair(&src{}, &dst{}, "Name", func(any) (any, error) { return "X", nil })

	d := dst{}
	require.NoError(t, m.Map(&src{Name: "MiXeD"}, &d))
	assert.Equal(t, "X", d.Name, "pair scope wins")

	d = dst{}
	require.NoError(t, m.Map(&other{Name: "MiXeD"}, &d))
	assert.Equal(t, "mixed", d.Name, "destination scope beats global")

	o := other{}
	require.NoError(t, m.Map(&src{Name: "MiXeD"}, &o))
	assert.Equal(t, "MIXED", o.Name, "global applies elsewhere")
}

func TestComposeConverters(t *testing.T) {
	trim := MapString(strings.TrimSpace)
	upper := MapString(strings.ToUpper)
	out, err := ComposeConverters(trim, upper)("  ann ")
	require.NoError(t, err)
	assert.Equal(t, "ANN", out)

	var called bool
	stop := func(any) (any, error) { return nil, nil }
	after := func(v any) (any, error) { called = true; return v, nil }
	out, err = ComposeConverters(stop, after)("x")
	require.NoError(t, err)
	assert.Nil(t, out)
	assert.False(t, called)

	_, err = ComposeConverters(func(any) (any, error) { return nil, assert.AnError }, after)("x")
	assert.ErrorIs(t, err, assert.AnError)

	out, err = MapString(strings.ToUpper)(5)
	require.NoError(t, err)
	assert.Equal(t, 5, out)
}

func TestFieldMapper_IgnoreTags(t *testing.T) {
	type User struct {
		Name     string
		Password string `resource:"ignore"`
		Email    string
		Token    string `resource:"-"`
	}
	type UserView struct {
		Name     string
		Password string
		Email    string
		Token    string
	}

	m := NewFieldMapper()
	d := UserView{}
	require.NoError(t, m.Map(&User{Name: "n", Password: "p", Email: "e", Token: "t"}, &d))
	assert.Equal(t, UserView{Name: "n", Email: "e"}, d)

	type Guarded struct {
		Name     string
		Password string `resource:"-"`
	}
	g := Guarded{Password: "keep"}
	require.NoError(t, m.Map(&UserView{Name: "n", Password: "overwrite"}, &g))
	assert.Equal(t, Guarded{Name: "n", Password: "keep"}, g)
}

func TestFieldMapper_JSONTagMatching(t *testing.T) {
	type src struct {
		GivenName string `json:"first_name"`
	}
	type dst struct {
		FirstName string `json:"first_name,omitempty"`
	}

	m := NewFieldMapper()
	d := dst{}
	require.NoError(t, m.Map(&src{GivenName: "jane"}, &d))
	assert.Equal(t, "jane", d.FirstName)
}

type Address struct {
	Street string
	City   string
}

type Audit struct {
	CreatedBy string
}

func TestFieldMapper_EmbeddedStructs(t *testing.T) {
	type PersonSrc struct {
		Name string
		*Address
		Audit
	}
	type PersonDst struct {
		Name      string
		Street    string
		City      string
		CreatedBy string
	}

	m := NewFieldMapper()
	d := PersonDst{}
	require.NoError(t, m.Map(&PersonSrc{Name: "Alice", Address: &Address{Street: "123 Main St", City: "Boston"}, Audit: Audit{CreatedBy: "sys"}}, &d))
	assert.Equal(t, PersonDst{Name: "Alice", Street: "123 Main St", City: "Boston", CreatedBy: "sys"}, d)

	d = PersonDst{}
	require.NoError(t, m.Map(&PersonSrc{Name: "Bob"}, &d))
	assert.Equal(t, PersonDst{Name: "Bob"}, d)
}

func TestFieldMapper_EmbeddedPointerDestinationAllocated(t *testing.T) {
	type Flat struct {
		Name string
		City string
	}
	type Nested struct {
		Name string
		*Address
	}

	m := NewFieldMapper()
	d := Nested{}
	require.NoError(t, m.Map(&Flat{Name: "Ann", City: "Paris"}, &d))
	require.NotNil(t, d.Address)
	assert.Equal(t, "Paris", d.City)
}

func TestFieldMapper_WarmMetadata(t *testing.T) {
	m := NewFieldMapper()
	m.WarmMetadata(SourceBasic{}, &DestBasic{}, nil, 5)

	_, ok := m.metadataCache.Load(baseType(SourceBasic{}))
	assert.True(t, ok)
	_, ok = m.metadataCache.Load(baseType(DestBasic{}))
	assert.True(t, ok)
}

type Identified struct {
	ID   int
	Kind string
}

func TestFieldMapper_OuterFieldShadowsEmbedded(t *testing.T) {
	type src struct {
		ID int
		Identified
	}
	type dst struct {
		ID   int
		Kind string
	}

	m := NewFieldMapper()
	d := dst{}
	require.NoError(t, m.Map(&src{ID: 1, Identified: Identified{ID: 2, Kind: "member"}}, &d))
	assert.Equal(t, dst{ID: 1, Kind: "member"}, d)
}

func TestFieldMapper_ShadowedDestinationFieldUntouched(t *testing.T) {
	type src struct{ ID int }
	type dst struct {
		ID int
		Identified
	}

	m := NewFieldMapper()
	d := dst{}
	require.NoError(t, m.Map(&src{ID: 7}, &d))
	assert.Equal(t, 7, d.ID)
	assert.Zero(t, d.Identified.ID)
}

func TestFieldMapper_ShadowedFieldNotInAdditionalData(t *testing.T) {
	type src struct {
		ID int
		Identified
	}
	type dst struct {
		ID             int
		AdditionalData null.JSON
	}

	m := NewFieldMapper()
	d := dst{}
	require.NoError(t, m.Map(&src{ID: 1, Identified: Identified{ID: 2, Kind: "member"}}, &d))
	assert.Equal(t, 1, d.ID)
	require.True(t, d.AdditionalData.Valid)
	assert.JSONEq(t, `{"Kind":"member"}`, string(d.AdditionalData.JSON))
}

type Labelled struct {
	Kind string
}

func TestFieldMapper_AmbiguousEmbeddedFieldsSkipped(t *testing.T) {
	type src struct {
		Identified
		Labelled
	}
	type dst struct {
		ID   int
		Kind string
	}

	m := NewFieldMapper()
	d := dst{}
	require.NoError(t, m.Map(&src{Identified: Identified{ID: 3, Kind: "a"}, Labelled: Labelled{Kind: "b"}}, &d))
	assert.Equal(t, dst{ID: 3}, d)
}

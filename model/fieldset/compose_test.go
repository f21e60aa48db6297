package fieldset

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageBase(t *testing.T) *Base {
	base, err := NewBase("MessageBase", []Field{
		{Name: "AuthorID", TypeExpr: "int64"},
		{Name: "Text", TypeExpr: "string"},
	}, nil)
	require.NoError(t, err)
	return base
}

func userBase(t *testing.T) *Base {
	base, err := NewBase("UserBase", []Field{
		{Name: "ID", TypeExpr: "int64"},
		{Name: "Email", TypeExpr: "string", Tag: `json:"email"`},
		{Name: "profile", TypeExpr: "Profile"},
	}, Imports{"time": "time"})
	require.NoError(t, err)
	return base
}

func Test_Compose_BaseOnly(t *testing.T) {
	base := messageBase(t)

	decl, err := Compose(base, Request{})
	require.NoError(t, err)

	assert.Equal(t, "MessageBase", decl.Name)
	assert.Equal(t, "MessageBase", decl.Base)
	assert.Equal(t, base.Fields(), decl.Fields)
	assert.Empty(t, decl.Attrs)
	assert.Empty(t, decl.OwnFields())
}

func Test_Compose_BaseWithAttrs(t *testing.T) {
	decl, err := Compose(messageBase(t), Request{Attrs: []AttrName{AttrDebug, AttrClone}})
	require.NoError(t, err)

	assert.Equal(t, "MessageBase", decl.Name)
	assert.Equal(t, []AttrName{AttrDebug, AttrClone}, decl.Attrs)
	assert.True(t, decl.HasAttr(AttrClone))
	assert.False(t, decl.HasAttr(AttrEqual))
}

func Test_Compose_FieldOrder(t *testing.T) {
	base := userBase(t)
	additional := []Field{
		{Name: "Active", TypeExpr: "bool"},
		{Name: "Roles", TypeExpr: "[]string"},
		{Name: "last", TypeExpr: "time.Time"},
	}

	decl, err := Compose(base, Request{Name: "User", Fields: additional, Attrs: []AttrName{AttrEqual, AttrDebug}})
	require.NoError(t, err)

	if diff := cmp.Diff([]FieldName{"ID", "Email", "profile", "Active", "Roles", "last"}, decl.FieldNames()); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, base.Fields(), decl.InheritedFields())
	assert.Equal(t, additional, decl.OwnFields())
	assert.Equal(t, []AttrName{AttrEqual, AttrDebug}, decl.Attrs)
	assert.Equal(t, Imports{"time": "time"}, decl.Imports)
}

func Test_Compose_Bare(t *testing.T) {
	base := messageBase(t)

	decl, err := Compose(base, Request{Name: "MessageUpdateRequest"})
	require.NoError(t, err)

	assert.Equal(t, "MessageUpdateRequest", decl.Name)
	assert.Equal(t, base.Fields(), decl.Fields)
	assert.Nil(t, decl.Attrs)

	decl, err = Compose(base, Request{Name: "MessageCreateRequest", Attrs: []AttrName{AttrDebug, AttrClone, AttrEqual}})
	require.NoError(t, err)
	assert.Equal(t, base.Fields(), decl.Fields)
	assert.Equal(t, []AttrName{AttrDebug, AttrClone, AttrEqual}, decl.Attrs)
}

func Test_Compose_BaseIsNotAltered(t *testing.T) {
	base := messageBase(t)
	before := base.Fields()

	decl, err := Compose(base, Request{Name: "Message", Fields: []Field{{Name: "Read", TypeExpr: "bool"}}})
	require.NoError(t, err)
	decl.Fields[0].Name = "Changed"

	assert.Equal(t, before, base.Fields())

	fields := base.Fields()
	fields[1].TypeExpr = "[]byte"
	assert.Equal(t, before, base.Fields())
}

func Test_Compose_FieldsWithoutName(t *testing.T) {
	_, err := Compose(messageBase(t), Request{Fields: []Field{{Name: "Read", TypeExpr: "bool"}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
}

func Test_Compose_Collision(t *testing.T) {
	base := messageBase(t)

	_, err := Compose(base, Request{Name: "Message", Fields: []Field{{Name: "Text", TypeExpr: "[]byte"}}})
	assert.ErrorIs(t, err, ErrCollision)

	_, err = Compose(base, Request{Name: "Message", Fields: []Field{{Name: "Read", TypeExpr: "bool"}, {Name: "Read", TypeExpr: "bool"}}})
	assert.ErrorIs(t, err, ErrCollision)

	_, err = NewBase("Dup", []Field{{Name: "A", TypeExpr: "int"}, {Name: "A", TypeExpr: "string"}}, nil)
	assert.ErrorIs(t, err, ErrCollision)
}

func Test_Compose_Attrs(t *testing.T) {
	base := messageBase(t)

	_, err := Compose(base, Request{Name: "Message", Attrs: []AttrName{"Hash"}})
	assert.ErrorIs(t, err, ErrUnknownAttr)

	_, err = Compose(base, Request{Name: "Message", Attrs: []AttrName{AttrDebug, AttrDebug}})
	assert.ErrorIs(t, err, ErrMalformed)
}

func Test_Compose_InvalidNames(t *testing.T) {
	base := messageBase(t)

	_, err := Compose(base, Request{Name: "1Message"})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compose(base, Request{Name: "Message", Fields: []Field{{Name: "read-flag", TypeExpr: "bool"}}})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compose(base, Request{Name: "Message€"})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compose(base, Request{Name: "type"})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compose(base, Request{Name: "Message", Fields: []Field{{Name: "func", TypeExpr: "bool"}}})
	assert.ErrorIs(t, err, ErrMalformed)

	decl, err := Compose(base, Request{Name: "Сообщение"})
	require.NoError(t, err)
	assert.Equal(t, "Сообщение", decl.Name)

	_, err = Compose(base, Request{Name: "Message", Fields: []Field{{Name: "Read"}}})
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Compose(nil, Request{})
	assert.ErrorIs(t, err, ErrMalformed)
}

func Test_NewBase_Empty(t *testing.T) {
	_, err := NewBase("Empty", nil, nil)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = NewBase("", []Field{{Name: "A", TypeExpr: "int"}}, nil)
	assert.ErrorIs(t, err, ErrMalformed)
}

func Test_Field_String(t *testing.T) {
	assert.Equal(t, "ID int64", Field{Name: "ID", TypeExpr: "int64"}.String())
	assert.Equal(t, "*Profile", Field{Name: "Profile", TypeExpr: "*Profile", Embedded: true}.String())
	assert.Equal(t, "Email string `json:\"email\"`", Field{Name: "Email", TypeExpr: "string", Tag: `json:"email"`}.String())
	assert.True(t, Field{Name: "Email"}.IsExported())
	assert.False(t, Field{Name: "email"}.IsExported())
}

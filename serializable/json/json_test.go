package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imperiuse/popo/serializable"
	"github.com/imperiuse/popo/serializable/mock"
)

func TestMarshal(t *testing.T) {
	data, err := Marshal(mock.NewArrayPopo("Bertrand"))
	require.Nil(t, err)
	assert.Equal(t, `{"firstName":"Bertrand"}`, string(data))
}

func TestMarshalTest(t *testing.T) {
	data, err := MarshalTest(mock.NewArrayPopo("Bertrand"))
	require.Nil(t, err)
	assert.Equal(t, `{"first_name":"Bertrand"}`, string(data))
}

func TestMarshal_KeepsSchemaOrder(t *testing.T) {
	p := mock.NewCollectionPopo("private", []*mock.SamplePopo{mock.NewSamplePopo("test")}, 4)

	data, err := Marshal(p)
	require.Nil(t, err)
	assert.Equal(t, `{"samples":[{"name":"test"}],"number":4,"nullable":null,"array":[]}`, string(data))
	assert.NotContains(t, string(data), "thisIsPrivate")
	assert.NotContains(t, string(data), "private")
}

func TestMarshal_Nested(t *testing.T) {
	p := mock.NewExampleParentPopo("parent", mock.NewExamplePopo("1", "child", "hidden"))

	data, err := Marshal(p)
	require.Nil(t, err)
	assert.JSONEq(t, `{"name":"parent","popo":{"id":"1","title":"child"}}`, string(data))

	data, err = Marshal(mock.NewExampleParentPopo("orphan", nil))
	require.Nil(t, err)
	assert.Equal(t, `{"name":"orphan","popo":null}`, string(data))
}

func TestMarshal_Error(t *testing.T) {
	data, err := Marshal(&mock.BadPopo{Name: "bad"})
	assert.Nil(t, data)
	assert.ErrorIs(t, err, serializable.ErrFieldRead)
	assert.ErrorIs(t, err, mock.ErrBadPopo)
}

func TestPayload_Marshaler(t *testing.T) {
	var m serializable.Marshaler = Payload{Popo: mock.NewSamplePopo("x"), Test: true}

	data, err := m.Marshal()
	require.Nil(t, err)
	assert.Equal(t, `{"name":"x"}`, string(data))
}

func TestMarshal_NilRoot(t *testing.T) {
	data, err := Marshal((*mock.SamplePopo)(nil))
	assert.Nil(t, data)
	assert.ErrorIs(t, err, serializable.ErrNilPopo)
}

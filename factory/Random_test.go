package factory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fabrica-go/fabrica/factory"
)

type Widget struct {
	ID        int64 `ext:"ID"`
	Label     string
	Serial    string
	Count     int
	Weight    float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func TestFactory_randomDefaults(t *testing.T) {
	t.Parallel()

	f := factory.New()
	f.MustDefine(Widget{},
		factory.RandomDefaults(),
		factory.Attr(`Label`, func() interface{} { return `fixed label` }))

	ptr, err := f.Build(Widget{})
	require.Nil(t, err)
	widget := ptr.(*Widget)

	require.Equal(t, `fixed label`, widget.Label, `declared defaults win over random filling`)
	require.NotEmpty(t, widget.Serial)
	require.NotEqual(t, 0, widget.Count)
	require.NotEqual(t, float64(0), widget.Weight)

	require.Equal(t, int64(0), widget.ID, `the identifier belongs to the build strategy`)
	require.True(t, widget.CreatedAt.IsZero(), `timestamps belong to the build strategy`)
	require.True(t, widget.UpdatedAt.IsZero(), `timestamps belong to the build strategy`)
}

func TestFactory_randomDefaults_valuesVaryBetweenBuilds(t *testing.T) {
	t.Parallel()

	f := factory.New()
	f.MustDefine(Widget{}, factory.RandomDefaults())

	serials := make(map[string]struct{})
	for i := 0; i < 128; i++ {
		ptr, err := f.Build(Widget{})
		require.Nil(t, err)
		serials[ptr.(*Widget).Serial] = struct{}{}
	}

	require.True(t, len(serials) > 1)
}

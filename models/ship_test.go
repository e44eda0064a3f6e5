package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipType(t *testing.T) {
	t.Run("known tags are valid", func(t *testing.T) {
		for _, typ := range []ShipType{ShipTypeTransport, ShipTypeMilitary, ShipTypeMerchant} {
			assert.True(t, typ.Valid(), "expected %s to be valid", typ)
		}
	})

	t.Run("unknown tags are invalid", func(t *testing.T) {
		for _, typ := range []ShipType{"", "CRUISER", "transport "} {
			assert.False(t, typ.Valid(), "expected %q to be invalid", typ)
		}
	})

	t.Run("parse is case-insensitive", func(t *testing.T) {
		for _, raw := range []string{"TRANSPORT", "transport", "Transport"} {
			typ, ok := ParseShipType(raw)
			require.True(t, ok, "expected %q to parse", raw)
			assert.Equal(t, ShipTypeTransport, typ)
		}
	})

	t.Run("parse rejects unknown tags", func(t *testing.T) {
		_, ok := ParseShipType("FREIGHTER")
		assert.False(t, ok)
	})

	t.Run("scan accepts strings and bytes", func(t *testing.T) {
		var typ ShipType
		require.NoError(t, typ.Scan("MILITARY"))
		assert.Equal(t, ShipTypeMilitary, typ)

		require.NoError(t, typ.Scan([]byte("MERCHANT")))
		assert.Equal(t, ShipTypeMerchant, typ)
	})

	t.Run("value rejects invalid tags", func(t *testing.T) {
		_, err := ShipType("BOGUS").Value()
		assert.Error(t, err)

		v, err := ShipTypeTransport.Value()
		require.NoError(t, err)
		assert.Equal(t, "TRANSPORT", v)
	})
}

func TestShipSortField(t *testing.T) {
	t.Run("supported fields map to columns", func(t *testing.T) {
		cases := map[ShipSortField]string{
			ShipSortID:     "id",
			ShipSortSpeed:  "speed",
			ShipSortDate:   "prod_date",
			ShipSortRating: "rating",
		}
		for field, column := range cases {
			assert.True(t, field.Valid())
			assert.Equal(t, column, field.Column())
		}
	})

	t.Run("unknown fields are invalid", func(t *testing.T) {
		assert.False(t, ShipSortField("NAME").Valid())
		assert.False(t, ShipSortField("id").Valid(), "sort fields are uppercase tags")
	})
}

func TestShipTableName(t *testing.T) {
	assert.Equal(t, "ships", Ship{}.TableName())
}

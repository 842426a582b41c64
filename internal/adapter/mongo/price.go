package mongo

import (
	"strconv"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// price decodes any stored price representation; values that are not
// numeric (or NaN) become 0 instead of failing the whole fetch.
type price float64

func (p *price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	var f float64
	switch t {
	case bson.TypeDouble:
		f = rv.Double()
	case bson.TypeInt32:
		f = float64(rv.Int32())
	case bson.TypeInt64:
		f = float64(rv.Int64())
	case bson.TypeDecimal128:
		parsed, err := strconv.ParseFloat(rv.Decimal128().String(), 64)
		if err == nil {
			f = parsed
		}
	case bson.TypeString:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(rv.StringValue()), 64)
		if err == nil {
			f = parsed
		}
	}
	*p = price(entity.SanitizePrice(f))
	return nil
}

func (p price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(float64(p))
}

package store

import (
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"

	"esthecrm-backend/models"
)

// Codec is the statically declared mapping between a model and its storage
// row. Fields holds the storage column names (snake_case); Encode and Decode
// are the to-storage / from-storage pair. The CSV backend is built entirely
// on these, so the translation is testable without touching any file.
type Codec[T any] struct {
	Table  string
	Fields []string
	Encode func(*T) []string
	Decode func([]string) *T
	ID     func(*T) uuid.UUID
}

const timeLayout = time.RFC3339

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// decodeUUID maps malformed ids to uuid.Nil; downstream lookups then treat
// the row as a dangling reference instead of failing the whole read.
func decodeUUID(table, field, s string) uuid.UUID {
	if s == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		log.Printf("%s: invalid uuid in %s (%q), treating as unknown", table, field, s)
		return uuid.Nil
	}
	return id
}

func decodeFloat(table, field, s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("%s: non-numeric %s (%q), coerced to 0", table, field, s)
		return 0
	}
	return v
}

func decodeInt(table, field, s string) int {
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Printf("%s: non-numeric %s (%q), coerced to 0", table, field, s)
		return 0
	}
	return v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func CustomerCodec() Codec[models.Customer] {
	return Codec[models.Customer]{
		Table: "customers",
		Fields: []string{
			"id", "name", "phone", "birth_date", "skin_type",
			"memo", "point", "created_at", "updated_at",
		},
		Encode: func(c *models.Customer) []string {
			return []string{
				c.ID.String(), c.Name, c.Phone, c.BirthDate, c.SkinType,
				c.Memo, strconv.Itoa(c.Point),
				encodeTime(c.CreatedAt), encodeTime(c.UpdatedAt),
			}
		},
		Decode: func(row []string) *models.Customer {
			return &models.Customer{
				ID:        decodeUUID("customers", "id", row[0]),
				Name:      row[1],
				Phone:     row[2],
				BirthDate: row[3],
				SkinType:  row[4],
				Memo:      row[5],
				Point:     decodeInt("customers", "point", row[6]),
				CreatedAt: decodeTime(row[7]),
				UpdatedAt: decodeTime(row[8]),
			}
		},
		ID: func(c *models.Customer) uuid.UUID { return c.ID },
	}
}

func ProductCodec() Codec[models.Product] {
	return Codec[models.Product]{
		Table: "products",
		Fields: []string{
			"id", "name", "price", "type", "count",
			"status", "description", "created_at", "updated_at",
		},
		Encode: func(p *models.Product) []string {
			return []string{
				p.ID.String(), p.Name, formatFloat(p.Price), p.Type,
				strconv.Itoa(p.Count), p.Status, p.Description,
				encodeTime(p.CreatedAt), encodeTime(p.UpdatedAt),
			}
		},
		Decode: func(row []string) *models.Product {
			return &models.Product{
				ID:          decodeUUID("products", "id", row[0]),
				Name:        row[1],
				Price:       decodeFloat("products", "price", row[2]),
				Type:        row[3],
				Count:       decodeInt("products", "count", row[4]),
				Status:      row[5],
				Description: row[6],
				CreatedAt:   decodeTime(row[7]),
				UpdatedAt:   decodeTime(row[8]),
			}
		},
		ID: func(p *models.Product) uuid.UUID { return p.ID },
	}
}

func PurchaseCodec() Codec[models.Purchase] {
	return Codec[models.Purchase]{
		Table: "purchases",
		Fields: []string{
			"id", "customer_id", "product_id", "quantity",
			"purchase_date", "total_price", "created_at", "updated_at",
		},
		Encode: func(p *models.Purchase) []string {
			return []string{
				p.ID.String(), p.CustomerID.String(), p.ProductID.String(),
				strconv.Itoa(p.Quantity), p.PurchaseDate,
				formatFloat(p.TotalPrice),
				encodeTime(p.CreatedAt), encodeTime(p.UpdatedAt),
			}
		},
		Decode: func(row []string) *models.Purchase {
			return &models.Purchase{
				ID:           decodeUUID("purchases", "id", row[0]),
				CustomerID:   decodeUUID("purchases", "customer_id", row[1]),
				ProductID:    decodeUUID("purchases", "product_id", row[2]),
				Quantity:     decodeInt("purchases", "quantity", row[3]),
				PurchaseDate: row[4],
				TotalPrice:   decodeFloat("purchases", "total_price", row[5]),
				CreatedAt:    decodeTime(row[6]),
				UpdatedAt:    decodeTime(row[7]),
			}
		},
		ID: func(p *models.Purchase) uuid.UUID { return p.ID },
	}
}

func AppointmentCodec() Codec[models.Appointment] {
	return Codec[models.Appointment]{
		Table: "appointments",
		Fields: []string{
			"id", "customer_id", "product_id", "datetime",
			"memo", "status", "created_at", "updated_at",
		},
		Encode: func(a *models.Appointment) []string {
			return []string{
				a.ID.String(), a.CustomerID.String(), a.ProductID.String(),
				a.Datetime, a.Memo, a.Status,
				encodeTime(a.CreatedAt), encodeTime(a.UpdatedAt),
			}
		},
		Decode: func(row []string) *models.Appointment {
			return &models.Appointment{
				ID:         decodeUUID("appointments", "id", row[0]),
				CustomerID: decodeUUID("appointments", "customer_id", row[1]),
				ProductID:  decodeUUID("appointments", "product_id", row[2]),
				Datetime:   row[3],
				Memo:       row[4],
				Status:     row[5],
				CreatedAt:  decodeTime(row[6]),
				UpdatedAt:  decodeTime(row[7]),
			}
		},
		ID: func(a *models.Appointment) uuid.UUID { return a.ID },
	}
}

func FinanceCodec() Codec[models.FinanceRecord] {
	return Codec[models.FinanceRecord]{
		Table: "finance",
		Fields: []string{
			"id", "date", "type", "title", "amount",
			"memo", "created_at", "updated_at",
		},
		Encode: func(f *models.FinanceRecord) []string {
			return []string{
				f.ID.String(), f.Date, f.Type, f.Title,
				formatFloat(f.Amount), f.Memo,
				encodeTime(f.CreatedAt), encodeTime(f.UpdatedAt),
			}
		},
		Decode: func(row []string) *models.FinanceRecord {
			return &models.FinanceRecord{
				ID:        decodeUUID("finance", "id", row[0]),
				Date:      row[1],
				Type:      row[2],
				Title:     row[3],
				Amount:    decodeFloat("finance", "amount", row[4]),
				Memo:      row[5],
				CreatedAt: decodeTime(row[6]),
				UpdatedAt: decodeTime(row[7]),
			}
		},
		ID: func(f *models.FinanceRecord) uuid.UUID { return f.ID },
	}
}

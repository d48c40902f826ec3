// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/quillgate/quillgate/ent/contentitemversion"
)

// ContentItemVersion is the model entity for the ContentItemVersion schema.
type ContentItemVersion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID int `json:"tenant_id,omitempty"`
	// ContentItemID holds the value of the "content_item_id" field.
	ContentItemID int `json:"content_item_id,omitempty"`
	// Data holds the value of the "data" field.
	Data string `json:"data,omitempty"`
	// Status holds the value of the "status" field.
	Status contentitemversion.Status `json:"status,omitempty"`
	// Version holds the value of the "version" field.
	Version int `json:"version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentItemVersion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentitemversion.FieldID, contentitemversion.FieldTenantID, contentitemversion.FieldContentItemID, contentitemversion.FieldVersion:
			values[i] = new(sql.NullInt64)
		case contentitemversion.FieldData, contentitemversion.FieldStatus:
			values[i] = new(sql.NullString)
		case contentitemversion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentItemVersion fields.
func (_m *ContentItemVersion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentitemversion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contentitemversion.FieldTenantID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = int(value.Int64)
			}
		case contentitemversion.FieldContentItemID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field content_item_id", values[i])
			} else if value.Valid {
				_m.ContentItemID = int(value.Int64)
			}
		case contentitemversion.FieldData:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value.Valid {
				_m.Data = value.String
			}
		case contentitemversion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contentitemversion.Status(value.String)
			}
		case contentitemversion.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = int(value.Int64)
			}
		case contentitemversion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentItemVersion.
// This includes values selected through modifiers, order, etc.
func (_m *ContentItemVersion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ContentItemVersion.
// Note that you need to call ContentItemVersion.Unwrap() before calling this method if this ContentItemVersion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentItemVersion) Update() *ContentItemVersionUpdateOne {
	return NewContentItemVersionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentItemVersion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentItemVersion) Unwrap() *ContentItemVersion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentItemVersion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentItemVersion) String() string {
	var builder strings.Builder
	builder.WriteString("ContentItemVersion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.TenantID))
	builder.WriteString(", ")
	builder.WriteString("content_item_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentItemID))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(_m.Data)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", _m.Version))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ContentItemVersions is a parsable slice of ContentItemVersion.
type ContentItemVersions []*ContentItemVersion

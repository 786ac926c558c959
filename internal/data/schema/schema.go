package schema

import (
	"context"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LinksColumns holds the columns for the "links" table.
	LinksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "user_id", Type: field.TypeString, Size: 64},
		{Name: "alias", Type: field.TypeString, Unique: true, Size: 128},
		{Name: "original_url", Type: field.TypeString, Size: 2048},
		{Name: "click_count", Type: field.TypeInt64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LinksTable holds the schema information for the "links" table.
	LinksTable = &schema.Table{
		Name:       "links",
		Columns:    LinksColumns,
		PrimaryKey: []*schema.Column{LinksColumns[0]},
	}

	// ClicksColumns holds the columns for the "clicks" table.
	ClicksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "link_id", Type: field.TypeString, Size: 36},
		{Name: "user_id", Type: field.TypeString, Size: 64},
		{Name: "clicked_at", Type: field.TypeTime},
		{Name: "click_date", Type: field.TypeString, Size: 10},
		{Name: "ip", Type: field.TypeString, Size: 64},
		{Name: "country", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeString, Nullable: true},
		{Name: "city", Type: field.TypeString, Nullable: true},
		{Name: "latitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "longitude", Type: field.TypeFloat64, Nullable: true},
		{Name: "asn", Type: field.TypeInt64, Nullable: true},
		{Name: "isp", Type: field.TypeString, Nullable: true},
		{Name: "timezone", Type: field.TypeString, Nullable: true},
		{Name: "device_type", Type: field.TypeString, Nullable: true},
		{Name: "device_os", Type: field.TypeString, Nullable: true},
		{Name: "device_browser", Type: field.TypeString, Nullable: true},
		{Name: "referer", Type: field.TypeString, Nullable: true, Size: 2048},
		{Name: "referer_category", Type: field.TypeString, Size: 16},
		{Name: "utm_source", Type: field.TypeString, Nullable: true},
		{Name: "utm_medium", Type: field.TypeString, Nullable: true},
		{Name: "utm_campaign", Type: field.TypeString, Nullable: true},
		{Name: "utm_term", Type: field.TypeString, Nullable: true},
		{Name: "utm_content", Type: field.TypeString, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "is_bot", Type: field.TypeBool, Default: false},
		{Name: "is_vpn", Type: field.TypeBool, Nullable: true},
		{Name: "is_tor", Type: field.TypeBool, Nullable: true},
		{Name: "is_proxy", Type: field.TypeBool, Nullable: true},
		{Name: "is_malicious", Type: field.TypeBool, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "is_high_latency", Type: field.TypeBool, Default: false},
		{Name: "is_first_visit", Type: field.TypeBool, Default: false},
	}
	// ClicksTable holds the schema information for the "clicks" table.
	ClicksTable = &schema.Table{
		Name:       "clicks",
		Columns:    ClicksColumns,
		PrimaryKey: []*schema.Column{ClicksColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "click_link_id_clicked_at",
				Unique:  false,
				Columns: []*schema.Column{ClicksColumns[1], ClicksColumns[3]},
			},
			{
				Name:    "click_link_id_ip",
				Unique:  false,
				Columns: []*schema.Column{ClicksColumns[1], ClicksColumns[5]},
			},
			{
				Name:    "click_link_id_click_date",
				Unique:  false,
				Columns: []*schema.Column{ClicksColumns[1], ClicksColumns[4]},
			},
		},
	}

	// IPFloodEventsColumns holds the columns for the "ip_flood_events" table.
	IPFloodEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "link_id", Type: field.TypeString, Size: 36},
		{Name: "ip", Type: field.TypeString, Size: 64},
		{Name: "click_count", Type: field.TypeInt64},
		{Name: "clicks_per_minute", Type: field.TypeFloat64},
		{Name: "is_bot", Type: field.TypeBool, Default: false},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "detected_at", Type: field.TypeTime},
	}
	// IPFloodEventsTable holds the schema information for the "ip_flood_events" table.
	IPFloodEventsTable = &schema.Table{
		Name:       "ip_flood_events",
		Columns:    IPFloodEventsColumns,
		PrimaryKey: []*schema.Column{IPFloodEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "ipfloodevent_link_id_detected_at",
				Unique:  false,
				Columns: []*schema.Column{IPFloodEventsColumns[1], IPFloodEventsColumns[8]},
			},
		},
	}

	// TrafficSpikesColumns holds the columns for the "traffic_spikes" table.
	TrafficSpikesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "link_id", Type: field.TypeString, Size: 36},
		{Name: "spike_count", Type: field.TypeInt64},
		{Name: "window_start", Type: field.TypeTime},
		{Name: "window_end", Type: field.TypeTime},
		{Name: "detected_at", Type: field.TypeTime},
	}
	// TrafficSpikesTable holds the schema information for the "traffic_spikes" table.
	TrafficSpikesTable = &schema.Table{
		Name:       "traffic_spikes",
		Columns:    TrafficSpikesColumns,
		PrimaryKey: []*schema.Column{TrafficSpikesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trafficspike_link_id_detected_at",
				Unique:  false,
				Columns: []*schema.Column{TrafficSpikesColumns[1], TrafficSpikesColumns[5]},
			},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LinksTable,
		ClicksTable,
		IPFloodEventsTable,
		TrafficSpikesTable,
	}
)

// Create runs the schema migration against drv.
func Create(ctx context.Context, drv dialect.Driver, opts ...schema.MigrateOption) error {
	migrate, err := schema.NewMigrate(drv, opts...)
	if err != nil {
		return err
	}
	return migrate.Create(ctx, Tables...)
}

package data

import (
	"context"
	"fmt"
	"time"

	"linkstats/internal/domain"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/samber/lo"
)

// Compile-time interface check
var _ domain.ClickRepository = (*clickRepo)(nil)

const clicksTable = "clicks"

var clickColumns = []string{
	"id", "link_id", "user_id", "clicked_at", "click_date", "ip",
	"country", "state", "city", "latitude", "longitude", "asn", "isp", "timezone",
	"device_type", "device_os", "device_browser",
	"referer", "referer_category",
	"utm_source", "utm_medium", "utm_campaign", "utm_term", "utm_content",
	"language", "is_bot", "is_vpn", "is_tor", "is_proxy", "is_malicious",
	"latency_ms", "is_high_latency", "is_first_visit",
}

var fieldColumns = map[domain.Field]string{
	domain.FieldCountry:         "country",
	domain.FieldState:           "state",
	domain.FieldCity:            "city",
	domain.FieldUTMSource:       "utm_source",
	domain.FieldUTMMedium:       "utm_medium",
	domain.FieldUTMCampaign:     "utm_campaign",
	domain.FieldUTMTerm:         "utm_term",
	domain.FieldUTMContent:      "utm_content",
	domain.FieldDeviceType:      "device_type",
	domain.FieldDeviceOS:        "device_os",
	domain.FieldDeviceBrowser:   "device_browser",
	domain.FieldRefererCategory: "referer_category",
}

// clickRepo implements domain.ClickRepository on the SQL store.
type clickRepo struct {
	data *Data
	log  *log.Helper
}

// NewClickRepo creates a new click repository.
func NewClickRepo(data *Data, logger log.Logger) domain.ClickRepository {
	return &clickRepo{
		data: data,
		log:  log.NewHelper(log.With(logger, "module", "data/click")),
	}
}

// Save inserts a click event.
func (r *clickRepo) Save(ctx context.Context, c *domain.ClickEvent) error {
	insert := r.data.builder().Insert(clicksTable).
		Columns(clickColumns...).
		Values(
			c.ID, c.LinkID, c.UserID, c.Timestamp.UTC(), c.ClickDate(), c.IP,
			lo.EmptyableToPtr(c.Geo.Country), lo.EmptyableToPtr(c.Geo.State), lo.EmptyableToPtr(c.Geo.City),
			c.Geo.Latitude, c.Geo.Longitude, c.Geo.ASN,
			lo.EmptyableToPtr(c.Geo.ISP), lo.EmptyableToPtr(c.Geo.Timezone),
			lo.EmptyableToPtr(c.Device.Type), lo.EmptyableToPtr(c.Device.OS), lo.EmptyableToPtr(c.Device.Browser),
			lo.EmptyableToPtr(c.Referer), string(c.RefererCategory),
			c.UTM.Source, c.UTM.Medium, c.UTM.Campaign, c.UTM.Term, c.UTM.Content,
			lo.EmptyableToPtr(c.Language), c.IsBot,
			c.Security.IsVPN, c.Security.IsTor, c.Security.IsProxy, c.Security.IsMalicious,
			c.LatencyMs, c.IsHighLatency, c.IsFirstVisit,
		)
	if err := r.data.exec(ctx, insert); err != nil {
		return fmt.Errorf("insert click: %w", err)
	}
	return nil
}

// ExistsForIP reports whether the link has any click from ip.
func (r *clickRepo) ExistsForIP(ctx context.Context, linkID, ip string) (bool, error) {
	selector := r.data.builder().Select("id").
		From(entsql.Table(clicksTable)).
		Where(entsql.And(entsql.EQ("link_id", linkID), entsql.EQ("ip", ip))).
		Limit(1)

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	exists := rows.Next()
	return exists, rows.Err()
}

// CountBy groups the link's clicks by field.
func (r *clickRepo) CountBy(ctx context.Context, linkID string, field domain.Field, limit int) ([]domain.GroupCount, error) {
	column, ok := fieldColumns[field]
	if !ok {
		return nil, fmt.Errorf("no column for field %d", field)
	}

	selector := r.data.builder().Select(column, "COUNT(*) AS total").
		From(entsql.Table(clicksTable)).
		Where(entsql.And(
			entsql.EQ("link_id", linkID),
			entsql.NotNull(column),
			entsql.NEQ(column, ""),
		)).
		GroupBy(column).
		OrderExpr(entsql.Expr(fmt.Sprintf("total DESC, %s ASC", column))).
		Limit(limit)

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.GroupCount, 0)
	for rows.Next() {
		var gc domain.GroupCount
		if err := rows.Scan(&gc.Key, &gc.Count); err != nil {
			return nil, err
		}
		result = append(result, gc)
	}
	return result, rows.Err()
}

// CountBots splits the link's clicks by the bot flag.
func (r *clickRepo) CountBots(ctx context.Context, linkID string) (domain.BotStats, error) {
	selector := r.data.builder().
		Select("COUNT(*) AS total", "SUM(CASE WHEN is_bot THEN 1 ELSE 0 END) AS bots").
		From(entsql.Table(clicksTable)).
		Where(entsql.EQ("link_id", linkID))

	var total, bots entsql.NullInt64
	if err := r.scanOne(ctx, selector, &total, &bots); err != nil {
		return domain.BotStats{}, err
	}
	return domain.BotStats{
		HumanCount: total.Int64 - bots.Int64,
		BotCount:   bots.Int64,
	}, nil
}

// CountTotals returns the link's click count and first-visit count.
func (r *clickRepo) CountTotals(ctx context.Context, linkID string) (domain.ClickTotals, error) {
	selector := r.data.builder().
		Select("COUNT(*) AS total", "SUM(CASE WHEN is_first_visit THEN 1 ELSE 0 END) AS first_visits").
		From(entsql.Table(clicksTable)).
		Where(entsql.EQ("link_id", linkID))

	var total, firstVisits entsql.NullInt64
	if err := r.scanOne(ctx, selector, &total, &firstVisits); err != nil {
		return domain.ClickTotals{}, err
	}
	return domain.ClickTotals{
		TotalClicks:    total.Int64,
		UniqueVisitors: firstVisits.Int64,
	}, nil
}

// DailyCounts returns per-day totals for the UTC days from..to inclusive.
func (r *clickRepo) DailyCounts(ctx context.Context, linkID string, from, to time.Time) ([]domain.RetentionDay, error) {
	selector := r.data.builder().
		Select("click_date", "COUNT(*) AS total", "COUNT(DISTINCT ip) AS visitors").
		From(entsql.Table(clicksTable)).
		Where(entsql.And(
			entsql.EQ("link_id", linkID),
			entsql.GTE("click_date", from.UTC().Format(domain.ClickDateLayout)),
			entsql.LTE("click_date", to.UTC().Format(domain.ClickDateLayout)),
		)).
		GroupBy("click_date").
		OrderBy("click_date")

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.RetentionDay, 0)
	for rows.Next() {
		var day domain.RetentionDay
		if err := rows.Scan(&day.Date, &day.TotalClicks, &day.UniqueVisitors); err != nil {
			return nil, err
		}
		result = append(result, day)
	}
	return result, rows.Err()
}

// ListClickTimes returns when each click happened and where.
func (r *clickRepo) ListClickTimes(ctx context.Context, linkID string) ([]domain.ClickTime, error) {
	selector := r.data.builder().Select("clicked_at", "timezone").
		From(entsql.Table(clicksTable)).
		Where(entsql.EQ("link_id", linkID))

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.ClickTime, 0)
	for rows.Next() {
		var (
			ts time.Time
			tz entsql.NullString
		)
		if err := rows.Scan(&ts, &tz); err != nil {
			return nil, err
		}
		result = append(result, domain.ClickTime{Timestamp: ts.UTC(), Timezone: tz.String})
	}
	return result, rows.Err()
}

// ListSlow returns clicks slower than thresholdMs, slowest then newest first.
func (r *clickRepo) ListSlow(ctx context.Context, linkID string, thresholdMs int64, limit int) ([]*domain.ClickEvent, error) {
	selector := r.data.builder().Select(clickColumns...).
		From(entsql.Table(clicksTable)).
		Where(entsql.And(
			entsql.EQ("link_id", linkID),
			entsql.GT("latency_ms", thresholdMs),
		)).
		OrderExpr(entsql.Expr("latency_ms DESC, clicked_at DESC")).
		Limit(limit)

	return r.list(ctx, selector)
}

// GeoPoints groups the link's clicks by coordinates and place.
func (r *clickRepo) GeoPoints(ctx context.Context, linkID string) ([]domain.HeatPoint, error) {
	selector := r.data.builder().
		Select("latitude", "longitude", "country", "city", "COUNT(*) AS weight").
		From(entsql.Table(clicksTable)).
		Where(entsql.And(
			entsql.EQ("link_id", linkID),
			entsql.NotNull("latitude"),
			entsql.NotNull("longitude"),
		)).
		GroupBy("latitude", "longitude", "country", "city").
		OrderExpr(entsql.Expr("weight DESC, latitude ASC, longitude ASC"))

	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]domain.HeatPoint, 0)
	for rows.Next() {
		var (
			p             domain.HeatPoint
			country, city entsql.NullString
		)
		if err := rows.Scan(&p.Lat, &p.Lng, &country, &city, &p.Weight); err != nil {
			return nil, err
		}
		p.Country, p.City = country.String, city.String
		result = append(result, p)
	}
	return result, rows.Err()
}

// List returns the link's clicks, newest first.
func (r *clickRepo) List(ctx context.Context, linkID string, limit int) ([]*domain.ClickEvent, error) {
	selector := r.data.builder().Select(clickColumns...).
		From(entsql.Table(clicksTable)).
		Where(entsql.EQ("link_id", linkID)).
		OrderExpr(entsql.Expr("clicked_at DESC, id DESC")).
		Limit(limit)

	return r.list(ctx, selector)
}

func (r *clickRepo) scanOne(ctx context.Context, selector *entsql.Selector, dest ...any) error {
	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return fmt.Errorf("no rows for %s", clicksTable)
	}
	return rows.Scan(dest...)
}

func (r *clickRepo) list(ctx context.Context, selector *entsql.Selector) ([]*domain.ClickEvent, error) {
	rows, err := r.data.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]*domain.ClickEvent, 0)
	for rows.Next() {
		c, err := scanClick(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

// scanClick reads one row selected with clickColumns. Nullable text columns
// map to empty strings; the optional ones keep nil.
func scanClick(rows *entsql.Rows) (*domain.ClickEvent, error) {
	var (
		c        domain.ClickEvent
		date     string
		category string
		text     [10]entsql.NullString
	)
	err := rows.Scan(
		&c.ID, &c.LinkID, &c.UserID, &c.Timestamp, &date, &c.IP,
		&text[0], &text[1], &text[2], &c.Geo.Latitude, &c.Geo.Longitude, &c.Geo.ASN, &text[3], &text[4],
		&text[5], &text[6], &text[7],
		&text[8], &category,
		&c.UTM.Source, &c.UTM.Medium, &c.UTM.Campaign, &c.UTM.Term, &c.UTM.Content,
		&text[9], &c.IsBot, &c.Security.IsVPN, &c.Security.IsTor, &c.Security.IsProxy, &c.Security.IsMalicious,
		&c.LatencyMs, &c.IsHighLatency, &c.IsFirstVisit,
	)
	if err != nil {
		return nil, err
	}

	c.Timestamp = c.Timestamp.UTC()
	c.Geo.Country, c.Geo.State, c.Geo.City = text[0].String, text[1].String, text[2].String
	c.Geo.ISP, c.Geo.Timezone = text[3].String, text[4].String
	c.Device = domain.Device{Type: text[5].String, OS: text[6].String, Browser: text[7].String}
	c.Referer = text[8].String
	c.RefererCategory = domain.RefererCategory(category)
	c.Language = text[9].String
	return &c, nil
}

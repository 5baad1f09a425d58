package service

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/MohdZaid0205/enterprise-resource-planning/internal/model"
)

// ── ICS 解析器 ──────────────────────────────────────────────
//
// 职责：将标准 iCalendar (RFC 5545) 内容解析为课表时间块列表。
//
// 设计决策：
//   - DTSTART/DTEND 确定星期几、起始时间与时长
//   - LOCATION 映射到教室
//   - 同 (day, start_time) 的事件只保留第一个（课表主键约束）
//   - 重复规则不展开：课表按周固定，单个 VEVENT 即一个时间块
// ─────────────────────────────────────────────────────────────

const (
	icsMaxFileSize  = 5 * 1024 * 1024 // 5MB
	icsFetchTimeout = 30 * time.Second
)

// FetchICSContent 从 URL 获取 ICS 内容
func FetchICSContent(rawURL string) (io.ReadCloser, error) {
	// webcal:// → https://
	u := rawURL
	if strings.HasPrefix(u, "webcal://") {
		u = "https://" + strings.TrimPrefix(u, "webcal://")
	}

	client := &http.Client{Timeout: icsFetchTimeout}
	resp, err := client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("获取 ICS 失败: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("获取 ICS 失败: HTTP %d", resp.StatusCode)
	}
	// 限制响应体大小，防止恶意 URL 返回超大内容导致 OOM
	return struct {
		io.Reader
		io.Closer
	}{
		Reader: io.LimitReader(resp.Body, icsMaxFileSize),
		Closer: resp.Body,
	}, nil
}

// ParseICS 解析 ICS 内容并转为指定教学班的课表时间块
func ParseICS(reader io.Reader, sectionID string) ([]model.TimetableSlot, error) {
	cal, err := ics.ParseCalendar(reader)
	if err != nil {
		return nil, fmt.Errorf("ICS 格式解析失败: %w", err)
	}

	seen := make(map[string]bool)
	var slots []model.TimetableSlot
	for _, evt := range cal.Events() {
		slot, ok := parseVEvent(evt, sectionID)
		if !ok {
			continue
		}
		key := slot.Day + "|" + slot.StartTime
		if seen[key] {
			continue
		}
		seen[key] = true
		slots = append(slots, slot)
	}

	// 固定顺序：周一到周日，同日按开始时间
	sort.Slice(slots, func(i, j int) bool {
		di, dj := dayIndex(slots[i].Day), dayIndex(slots[j].Day)
		if di != dj {
			return di < dj
		}
		return slots[i].StartTime < slots[j].StartTime
	})
	return slots, nil
}

// parseVEvent 解析单个 VEVENT 组件
func parseVEvent(evt *ics.VEvent, sectionID string) (model.TimetableSlot, bool) {
	dtStart, err := parseICSDateTime(evt, ics.ComponentPropertyDtStart)
	if err != nil {
		return model.TimetableSlot{}, false
	}
	dtEnd, err := parseICSDateTime(evt, ics.ComponentPropertyDtEnd)
	if err != nil {
		// 若无 DTEND 默认 1 小时
		dtEnd = dtStart.Add(time.Hour)
	}

	duration := int(dtEnd.Sub(dtStart).Minutes())
	if duration <= 0 {
		return model.TimetableSlot{}, false
	}

	room := ""
	if loc := evt.GetProperty(ics.ComponentPropertyLocation); loc != nil {
		room = strings.TrimSpace(loc.Value)
	}

	return model.TimetableSlot{
		SectionID:    sectionID,
		Day:          strings.ToUpper(dtStart.Weekday().String()),
		StartTime:    dtStart.Format("15:04"),
		DurationMins: duration,
		Room:         room,
	}, true
}

// parseICSDateTime 从 VEVENT 中解析日期时间属性
func parseICSDateTime(evt *ics.VEvent, propName ics.ComponentProperty) (time.Time, error) {
	prop := evt.GetProperty(propName)
	if prop == nil {
		return time.Time{}, fmt.Errorf("missing property %s", propName)
	}
	val := prop.Value

	formats := []string{
		"20060102T150405Z",
		"20060102T150405",
		"20060102",
	}

	// 检查 TZID 参数
	tzid := ""
	for k, v := range prop.ICalParameters {
		if strings.ToUpper(k) == "TZID" && len(v) > 0 {
			tzid = v[0]
		}
	}

	for _, layout := range formats {
		if t, err := time.Parse(layout, val); err == nil {
			if tzid != "" {
				if tzLoc, err := time.LoadLocation(tzid); err == nil {
					return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, tzLoc), nil
				}
			}
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("无法解析日期: %s", val)
}

// dayIndex 周一为 0 … 周日为 6，未知排最后
func dayIndex(day string) int {
	order := []string{"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}
	for i, d := range order {
		if d == day {
			return i
		}
	}
	return len(order)
}

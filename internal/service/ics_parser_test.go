package service

import (
	"strings"
	"testing"
)

const sampleICS = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//test//EN
BEGIN:VEVENT
UID:evt-1
SUMMARY:Algorithms Lecture
DTSTART:20250901T090000
DTEND:20250901T103000
LOCATION:A-101
END:VEVENT
BEGIN:VEVENT
UID:evt-2
SUMMARY:Algorithms Lab
DTSTART:20250903T140000
DTEND:20250903T150000
LOCATION:Lab-2
END:VEVENT
END:VCALENDAR
`

func TestParseICS_MapsEventsToSlots(t *testing.T) {
	slots, err := ParseICS(strings.NewReader(sampleICS), "sec-001")
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	if len(slots) != 2 {
		t.Fatalf("期望 2 个时间块，实际=%d", len(slots))
	}

	// 2025-09-01 是周一
	first := slots[0]
	if first.SectionID != "sec-001" {
		t.Errorf("时间块应归属指定班次，实际=%s", first.SectionID)
	}
	if first.Day != "MONDAY" || first.StartTime != "09:00" {
		t.Errorf("期望 MONDAY 09:00，实际 %s %s", first.Day, first.StartTime)
	}
	if first.DurationMins != 90 {
		t.Errorf("期望时长 90 分钟，实际=%d", first.DurationMins)
	}
	if first.Room != "A-101" {
		t.Errorf("期望教室 A-101，实际=%s", first.Room)
	}

	second := slots[1]
	if second.Day != "WEDNESDAY" || second.DurationMins != 60 || second.Room != "Lab-2" {
		t.Errorf("第二个时间块不正确: %+v", second)
	}
}

func TestParseICS_DeduplicatesSameDayAndTime(t *testing.T) {
	dup := strings.Replace(sampleICS, "UID:evt-2", "UID:evt-2-dup", 1)
	dup = strings.Replace(dup, "DTSTART:20250903T140000", "DTSTART:20250901T090000", 1)
	dup = strings.Replace(dup, "DTEND:20250903T150000", "DTEND:20250901T100000", 1)

	slots, err := ParseICS(strings.NewReader(dup), "sec-001")
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	if len(slots) != 1 {
		t.Errorf("同 (日, 时刻) 事件应去重，实际=%d", len(slots))
	}
}

func TestParseICS_InvalidContent(t *testing.T) {
	if _, err := ParseICS(strings.NewReader("not an ics file"), "sec-001"); err == nil {
		t.Error("非法内容应返回错误")
	}
}

package quickadd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Result
	}{
		{
			name:  "priority time and tag",
			input: "!!! 客户A 14:30 #回访",
			want:  Result{Title: "客户A", Priority: "high", ReminderTime: "14:30", Tags: []string{"回访"}},
		},
		{
			name:  "bare time with at keyword",
			input: "方案沟通 at 09:15",
			want:  Result{Title: "方案沟通", ReminderTime: "09:15", Tags: []string{}},
		},
		{
			name:  "malformed reminder left in title",
			input: "客户沟通 r:abc",
			want:  Result{Title: "客户沟通 r:abc", Tags: []string{}},
		},
		{
			name:  "double bang is med",
			input: "!! 报价跟进",
			want:  Result{Title: "报价跟进", Priority: "med", Tags: []string{}},
		},
		{
			name:  "single bang is low",
			input: "! 整理样机",
			want:  Result{Title: "整理样机", Priority: "low", Tags: []string{}},
		},
		{
			name:  "last at marker wins",
			input: "复核合同 @08:00 @17:45",
			want:  Result{Title: "复核合同", ReminderTime: "17:45", Tags: []string{}},
		},
		{
			name:  "at marker beats bare time",
			input: "装机验收 10:00 @16:30",
			want:  Result{Title: "装机验收 10:00", ReminderTime: "16:30", Tags: []string{}},
		},
		{
			name:  "reminder lead in minutes",
			input: "客户回电 r:15m",
			want:  Result{Title: "客户回电", RemindBeforeMinutes: 15, Tags: []string{}},
		},
		{
			name:  "reminder lead in hours converts to minutes",
			input: "寄送样品 r:2h",
			want:  Result{Title: "寄送样品", RemindBeforeMinutes: 120, Tags: []string{}},
		},
		{
			name:  "last reminder lead wins",
			input: "备货确认 r:10m r:1h",
			want:  Result{Title: "备货确认", RemindBeforeMinutes: 60, Tags: []string{}},
		},
		{
			name:  "multiple tags keep appearance order",
			input: "演示机寄回 #物流 #华南",
			want:  Result{Title: "演示机寄回", Tags: []string{"物流", "华南"}},
		},
		{
			name:  "hour out of range is not a time",
			input: "盘点 24:30",
			want:  Result{Title: "盘点 24:30", Tags: []string{}},
		},
		{
			name:  "minute out of range is not a time",
			input: "盘点 12:61",
			want:  Result{Title: "盘点 12:61", Tags: []string{}},
		},
		{
			name:  "everything stripped leaves empty title",
			input: "!!! #标签 @09:00 r:5m",
			want:  Result{Title: "", Priority: "high", ReminderTime: "09:00", RemindBeforeMinutes: 5, Tags: []string{"标签"}},
		},
		{
			name:  "whitespace only input",
			input: "   ",
			want:  Result{Title: "", Tags: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriorityPrefixMustLead(t *testing.T) {
	got := Parse("跟进 !!! 急")
	assert.Empty(t, got.Priority)
	assert.Equal(t, "跟进 !!! 急", got.Title)
}

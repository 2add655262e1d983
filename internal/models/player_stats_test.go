package models

import (
	"reflect"
	"testing"
)

func sampleRows() []AggregateStatRow {
	return []AggregateStatRow{
		{Player: "Walrus Boots", Kills: 40, KD: "1.50", Accuracy: "0.42"},
		{Player: "OgFragnetism", Kills: 55, KD: "10.00", Accuracy: "0.38"},
		{Player: "Random Pub", Kills: 90, KD: "2.00", Accuracy: "0.50"},
		{Player: "Slimbo TDS", Kills: 40, KD: "0.00", Accuracy: "0.00"},
	}
}

func players(rows []AggregateStatRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Player
	}
	return out
}

func TestFilterPlayers(t *testing.T) {
	tests := []struct {
		name  string
		allow []string
		want  []string
	}{
		{
			name:  "Allow-list keeps order",
			allow: []string{"Slimbo TDS", "Walrus Boots"},
			want:  []string{"Walrus Boots", "Slimbo TDS"},
		},
		{
			name:  "Empty allow-list keeps all",
			allow: nil,
			want:  []string{"Walrus Boots", "OgFragnetism", "Random Pub", "Slimbo TDS"},
		},
		{
			name:  "No overlap",
			allow: []string{"Nobody"},
			want:  []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := players(FilterPlayers(sampleRows(), tt.allow))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FilterPlayers = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortRows(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		desc    bool
		want    []string
		wantErr bool
	}{
		{
			name:   "Kills desc ties by name",
			column: ColKills,
			desc:   true,
			want:   []string{"Random Pub", "OgFragnetism", "Slimbo TDS", "Walrus Boots"},
		},
		{
			name:   "KD numeric not lexical",
			column: ColKD,
			desc:   true,
			want:   []string{"OgFragnetism", "Random Pub", "Walrus Boots", "Slimbo TDS"},
		},
		{
			name:   "Player asc",
			column: ColPlayer,
			want:   []string{"OgFragnetism", "Random Pub", "Slimbo TDS", "Walrus Boots"},
		},
		{
			name:    "Unknown column",
			column:  "Headshots",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := sampleRows()
			err := SortRows(rows, tt.column, tt.desc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := players(rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SortRows = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaginate(t *testing.T) {
	rows := sampleRows()

	tests := []struct {
		name       string
		page, size int
		want       []string
		totalPages int
	}{
		{"First page", 0, 3, []string{"Walrus Boots", "OgFragnetism", "Random Pub"}, 2},
		{"Last partial page", 1, 3, []string{"Slimbo TDS"}, 2},
		{"Past the end", 5, 3, []string{}, 2},
		{"Huge page does not overflow", 1 << 62, 2, []string{}, 2},
		{"Max int page", int(^uint(0) >> 1), 3, []string{}, 2},
		{"Zero size is one page", 0, 0, []string{"Walrus Boots", "OgFragnetism", "Random Pub", "Slimbo TDS"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(rows, tt.page, tt.size)
			if got := players(p.Rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rows = %v, want %v", got, tt.want)
			}
			if p.TotalRows != 4 || p.TotalPages != tt.totalPages {
				t.Errorf("totals = %d/%d, want 4/%d", p.TotalRows, p.TotalPages, tt.totalPages)
			}
		})
	}

	if p := Paginate(nil, 0, 10); p.Rows == nil || p.TotalPages != 0 {
		t.Errorf("empty paginate = %+v", p)
	}
}

func TestGameResultRowValues(t *testing.T) {
	r := GameResultRow{Player: "A", MatchID: 1, Kills: 3, DamageDone: 12.5}
	v := r.Values()
	if len(v) != len(GameResultColumns) {
		t.Fatalf("len(Values) = %d, want %d", len(v), len(GameResultColumns))
	}
	if _, ok := v[2].(int64); !ok {
		t.Errorf("whole kills should bind as int64, got %T", v[2])
	}
	if _, ok := v[5].(float64); !ok {
		t.Errorf("fractional damage should stay float64, got %T", v[5])
	}
}

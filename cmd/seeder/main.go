package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"

	sqrl "github.com/Masterminds/squirrel"
	flag "github.com/spf13/pflag"

	"github.com/halorec/league-stats/internal/config"
	"github.com/halorec/league-stats/internal/logic"
	"github.com/halorec/league-stats/internal/models"
	"github.com/halorec/league-stats/internal/storage"
)

// seeder creates demo matchNN_gameK tables and fills them with one row per
// player per game. Re-running it appends rows to existing tables.
func main() {
	fs := flag.NewFlagSet("seeder", flag.ExitOnError)
	dialectName := fs.String("dialect", envOr("DB_DIALECT", storage.Postgres), "store dialect: postgres, mysql, sqlite, clickhouse")
	dsn := fs.String("dsn", os.Getenv("DATABASE_URL"), "store connection string")
	matches := fs.Int("matches", 3, "number of matches to create")
	games := fs.Int("games", 3, "games per match")
	players := fs.StringSlice("players", config.DefaultPlayers, "player names")
	seed := fs.Int64("seed", 1, "random seed")
	fs.Parse(os.Args[1:])

	if *dsn == "" {
		log.Fatal("no store given: set DATABASE_URL or pass --dsn")
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, *dialectName, *dsn)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	dialect, err := logic.DialectFor(*dialectName, os.Getenv("DB_SCHEMA"))
	if err != nil {
		log.Fatal(err)
	}

	rng := rand.New(rand.NewSource(*seed))
	for m := 1; m <= *matches; m++ {
		for g := 1; g <= *games; g++ {
			table := models.GameTableName(m, g)
			if err := store.Exec(ctx, dialect.CreateGameTable(table)); err != nil {
				log.Fatalf("Failed to create %s: %v", table, err)
			}
			rows := make([]models.GameResultRow, 0, len(*players))
			for _, p := range *players {
				rows = append(rows, randomRow(rng, p, m))
			}
			if err := insertRows(ctx, store, dialect, table, rows); err != nil {
				log.Fatalf("Failed to fill %s: %v", table, err)
			}
			fmt.Printf("seeded %s (%d rows)\n", table, len(rows))
		}
	}
}

func insertRows(ctx context.Context, store storage.Store, d logic.Dialect, table string, rows []models.GameResultRow) error {
	cols := make([]string, len(models.GameResultColumns))
	for i, c := range models.GameResultColumns {
		cols[i] = d.Quote(c)
	}
	ins := sqrl.Insert(d.Quote(table)).Columns(cols...).PlaceholderFormat(d.Placeholder())
	for _, r := range rows {
		ins = ins.Values(r.Values()...)
	}
	query, args, err := ins.ToSql()
	if err != nil {
		return err
	}
	return store.Exec(ctx, query, args...)
}

func randomRow(rng *rand.Rand, player string, match int) models.GameResultRow {
	fired := 200 + rng.Intn(400)
	return models.GameResultRow{
		Player:      player,
		MatchID:     match,
		Kills:       float64(rng.Intn(25)),
		Deaths:      float64(rng.Intn(20)),
		Assists:     float64(rng.Intn(12)),
		DamageDone:  float64(1000 + rng.Intn(5000)),
		DamageTaken: float64(1000 + rng.Intn(5000)),
		ShotsFired:  float64(fired),
		ShotsLanded: float64(rng.Intn(fired)),
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/halorec/league-stats/internal/logic"
	"github.com/halorec/league-stats/internal/models"
	"github.com/halorec/league-stats/internal/storage"
)

// querygen prints the discovered tables and the aggregate SQL for a scope.
func main() {
	fs := flag.NewFlagSet("querygen", flag.ExitOnError)
	dialectName := fs.String("dialect", storage.Postgres, "store dialect")
	dsn := fs.String("dsn", os.Getenv("DATABASE_URL"), "store connection string")
	schema := fs.String("schema", "public", "postgres schema holding the game tables")
	scopeArg := fs.String("scope", "All", `scope: "All" or "Match #NN"`)
	run := fs.Bool("run", false, "also execute the query and print the rows")
	fs.Parse(os.Args[1:])

	scope, err := models.ParseScope(*scopeArg)
	if err != nil {
		log.Fatal(err)
	}
	dialect, err := logic.DialectFor(*dialectName, *schema)
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	store, err := storage.Open(ctx, *dialectName, *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	svc := logic.NewLeagueStatsService(store, dialect, zap.NewNop())

	tables, err := svc.FindTables(ctx, scope)
	if err != nil {
		log.Fatal(err)
	}
	for _, t := range tables {
		fmt.Printf("-- %s (match %02d, game %s)\n", t.Name, t.Match, t.Game)
	}

	query, err := svc.BuildQuery(ctx, scope)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(query)

	if !*run {
		return
	}
	rows, err := svc.GetPlayerStats(ctx, scope)
	if err != nil {
		log.Fatal(err)
	}
	for _, r := range rows {
		fmt.Printf("%-20s K=%v D=%v A=%v KD=%s KDA=%s Acc=%s AvgK=%s\n",
			r.Player, r.Kills, r.Deaths, r.Assists, r.KD, r.KDA, r.Accuracy, r.AvgKills)
	}
}

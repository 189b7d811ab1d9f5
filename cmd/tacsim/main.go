package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gridtactics/internal/ai"
	"gridtactics/internal/combat"
	"gridtactics/internal/config"
	"gridtactics/internal/util"
)

func main() {
	var cfgDir, out string
	var seed int64
	var n, rounds, workers int
	var saveLog, verbose bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&rounds, "rounds", 50, "max rounds per battle")
	flag.IntVar(&workers, "workers", 8, "batch workers")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.BoolVar(&verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	actionsCfg, itemsCfg, charsCfg, personalitiesCfg, err := config.LoadAll(cfgDir)
	if err != nil {
		slog.Error("failed to load config", "dir", cfgDir, "error", err)
		os.Exit(1)
	}
	book, err := combat.NewActionBook(actionsCfg, itemsCfg)
	if err != nil {
		slog.Error("failed to build action book", "error", err)
		os.Exit(1)
	}
	personalities, err := ai.NewPersonalities(personalitiesCfg)
	if err != nil {
		slog.Error("failed to compile personalities", "error", err)
		os.Exit(1)
	}
	calc := combat.StatCalculator{}
	env := &combat.Env{MaxRounds: rounds}

	newBattle := func(s int64) (*combat.Battlefield, *ai.Engine, error) {
		bf, err := combat.NewBattlefield(charsCfg, book)
		if err != nil {
			return nil, nil, err
		}
		engine := ai.New(calc, util.NewCoin(s))
		engine.Personalities = personalities
		return bf, engine, nil
	}

	if n <= 1 {
		bf, engine, err := newBattle(seed)
		if err != nil {
			slog.Error("failed to build battlefield", "error", err)
			os.Exit(1)
		}
		res := combat.RunBattle(env, bf, engine, calc, saveLog)
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
			slog.Error("failed to write result", "path", out, "error", err)
			os.Exit(1)
		}
		fmt.Printf("Single battle finished. Winner=%s, Rounds=%d -> %s\n", res.Winner, res.Rounds, out)
		return
	}

	type stat struct {
		Wins     map[string]int
		SumR     int
		ByAction map[string]int
		ByChar   map[string]int
	}
	var st = stat{
		Wins:     map[string]int{},
		ByAction: map[string]int{},
		ByChar:   map[string]int{},
	}
	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for i := range jobs {
				bf, engine, err := newBattle(seed + int64(workerID)*7919 + int64(i))
				if err != nil {
					slog.Error("failed to build battlefield", "run", i, "error", err)
					continue
				}
				res := combat.RunBattle(env, bf, engine, calc, false)

				mu.Lock()
				st.Wins[res.Winner]++
				st.SumR += res.Rounds
				for k, v := range res.DamageByAction {
					st.ByAction[k] += v
				}
				for k, v := range res.DamageByCharacter {
					st.ByChar[k] += v
				}
				mu.Unlock()
			}
		}(w)
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	totalDmg := 0
	for _, v := range st.ByAction {
		totalDmg += v
	}

	percent := func(m map[string]int) map[string]any {
		out := map[string]any{}
		for k, v := range m {
			share := 0.0
			if totalDmg > 0 {
				share = float64(v) / float64(totalDmg)
			}
			out[k] = map[string]any{"total": v, "ratio": share}
		}
		return out
	}
	rates := map[string]float64{}
	for k, v := range st.Wins {
		rates[k] = float64(v) / float64(n)
	}

	summary := map[string]any{
		"runs":         n,
		"win_rate":     rates,
		"avg_rounds":   float64(st.SumR) / float64(n),
		"total_damage": totalDmg,
		"by_action":    percent(st.ByAction),
		"by_character": percent(st.ByChar),
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		slog.Error("failed to write summary", "path", out, "error", err)
		os.Exit(1)
	}
	fmt.Printf("Batch %d done -> %s\n", n, filepath.Base(out))
}

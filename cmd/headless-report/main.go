package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Garsondee/Rocket-Sense/internal/arena"
	"github.com/Garsondee/Rocket-Sense/internal/pilot"
	"github.com/Garsondee/Rocket-Sense/internal/record"
)

type runStats struct {
	runIndex int
	seed     int64
	ticks    int

	touches   int
	goals     int
	flips     int
	fallbacks int

	firstTouchTick int
	firstGoalTick  int
	firstFlipTick  int

	avgSpeed  float64
	peakSpeed float64
	boostLeft float64
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var configDir string
	var tickLogPath string
	var dbPath string

	flag.IntVar(&runs, "runs", 5, "number of headless match runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configDir, "config", ".", "directory holding rocket_sense.cfg.json")
	flag.StringVar(&tickLogPath, "record-ticks", "", "write a zstd tick log per run (path gets .runN suffix)")
	flag.StringVar(&dbPath, "db", "", "append run summaries to a sqlite match database")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}

	tuning, err := pilot.LoadTuning(configDir)
	if err != nil {
		log.Fatal().Err(err).Msg("load tuning")
	}

	var db *record.MatchDB
	if dbPath != "" {
		db, err = record.OpenMatchDB(dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", dbPath).Msg("open match db")
		}
		defer db.Close()
	}

	fmt.Printf("=== Headless Match Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		stats := runMatch(i+1, seed, ticks, tuning, tickLogPath, log)
		all = append(all, stats)
		printRun(stats)

		if db != nil {
			_, err := db.Insert(record.MatchSummary{
				PlayedAt: time.Now(),
				Seed:     stats.seed,
				Ticks:    stats.ticks,
				Touches:  stats.touches,
				Goals:    stats.goals,
				Flips:    stats.flips,
			})
			if err != nil {
				log.Error().Err(err).Int("run", stats.runIndex).Msg("insert summary")
			}
		}
	}

	printAggregate(all)
}

func runMatch(runIndex int, seed int64, ticks int, tuning pilot.Tuning, tickLogPath string, log zerolog.Logger) runStats {
	match := arena.NewMatch(arena.WithSeed(seed))
	p := pilot.New(tuning, match.Oracle())
	match.AttachDriver(p)

	rs := runStats{
		runIndex:       runIndex,
		seed:           seed,
		ticks:          ticks,
		firstTouchTick: -1,
		firstGoalTick:  -1,
		firstFlipTick:  -1,
	}

	var tickLog *record.TickLog
	if tickLogPath != "" {
		path := fmt.Sprintf("%s.run%d", tickLogPath, runIndex)
		var err error
		tickLog, err = record.NewTickLog(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("open tick log, recording disabled for run")
		}
	}

	speedSum := 0.0
	match.OnTick(func(tick int, snap pilot.Snapshot, frame pilot.ControlFrame) {
		speed := snap.Self.Vel.Length()
		speedSum += speed
		if speed > rs.peakSpeed {
			rs.peakSpeed = speed
		}
		if rs.firstTouchTick < 0 && match.Stats().Touches > 0 {
			rs.firstTouchTick = tick
		}
		if rs.firstGoalTick < 0 && match.Stats().Goals > 0 {
			rs.firstGoalTick = tick
		}
		if rs.firstFlipTick < 0 && p.FlipsStarted() > 0 {
			rs.firstFlipTick = tick
		}
		if tickLog != nil {
			err := tickLog.Write(record.TickEntry{
				Tick:    tick,
				Elapsed: snap.Elapsed,
				Action:  p.LastAction().String(),
				CarPos:  snap.Self.Pos,
				Speed:   speed,
				BallPos: snap.Ball.Pos,
				Frame:   frame,
			})
			if err != nil {
				log.Error().Err(err).Int("tick", tick).Msg("tick log write")
			}
		}
	})

	match.Run(ticks)

	if tickLog != nil {
		if err := tickLog.Close(); err != nil {
			log.Error().Err(err).Msg("tick log close")
		}
	}

	rs.touches = match.Stats().Touches
	rs.goals = match.Stats().Goals
	rs.flips = p.FlipsStarted()
	rs.fallbacks = p.Fallbacks()
	rs.avgSpeed = avgSpeed(speedSum, ticks)
	rs.boostLeft = match.CarState().Boost
	return rs
}

func printRun(rs runStats) {
	verdict, reason := classifyRun(rs)
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("totals: touches=%d goals=%d flips=%d prediction_fallbacks=%d\n",
		rs.touches, rs.goals, rs.flips, rs.fallbacks)
	fmt.Printf("phase_markers: first_touch=%s first_goal=%s first_flip=%s\n",
		tickString(rs.firstTouchTick), tickString(rs.firstGoalTick), tickString(rs.firstFlipTick))
	fmt.Printf("movement: avg_speed=%.0f peak_speed=%.0f boost_left=%.0f\n",
		rs.avgSpeed, rs.peakSpeed, rs.boostLeft)
	fmt.Printf("verdict: %s (%s)\n\n", verdict, reason)
}

func printAggregate(all []runStats) {
	totalTouches := 0
	totalGoals := 0
	totalFlips := 0
	totalFallbacks := 0
	touchTicks := make([]int, 0, len(all))
	goalTicks := make([]int, 0, len(all))
	scoringRuns := 0

	for _, rs := range all {
		totalTouches += rs.touches
		totalGoals += rs.goals
		totalFlips += rs.flips
		totalFallbacks += rs.fallbacks
		if rs.firstTouchTick >= 0 {
			touchTicks = append(touchTicks, rs.firstTouchTick)
		}
		if rs.firstGoalTick >= 0 {
			goalTicks = append(goalTicks, rs.firstGoalTick)
		}
		if rs.goals > 0 {
			scoringRuns++
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d scoring_runs=%d\n", len(all), scoringRuns)
	fmt.Printf("avg_per_run: touches=%.1f goals=%.1f flips=%.1f prediction_fallbacks=%.1f\n",
		avg(totalTouches, len(all)), avg(totalGoals, len(all)), avg(totalFlips, len(all)), avg(totalFallbacks, len(all)))
	fmt.Printf("phase_marker_avg_ticks: first_touch=%s first_goal=%s\n",
		avgTickString(touchTicks), avgTickString(goalTicks))
}

// classifyRun gives a one-word verdict for a run so regressions stand out
// when skimming a long report.
func classifyRun(rs runStats) (string, string) {
	switch {
	case rs.goals > 0:
		return "scoring", fmt.Sprintf("goals=%d", rs.goals)
	case rs.touches > 0:
		return "pressuring", fmt.Sprintf("touches=%d without scoring", rs.touches)
	case rs.avgSpeed > 500:
		return "chasing", fmt.Sprintf("avg_speed=%.0f but no contact", rs.avgSpeed)
	default:
		return "idle", fmt.Sprintf("avg_speed=%.0f and no contact", rs.avgSpeed)
	}
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgSpeed(sum float64, ticks int) float64 {
	if ticks <= 0 {
		return 0
	}
	return sum / float64(ticks)
}

func tickString(v int) string {
	if v < 0 {
		return "n/a"
	}
	return fmt.Sprintf("%d", v)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

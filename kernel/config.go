package kernel

import "fmt"

// Config holds the tunables a kernel instance is constructed with. A zero
// Config is not valid; call Verify (or pass it to New, which calls Verify
// for you) before use.
type Config struct {
	// MSPerTick is the wall-clock duration, in milliseconds, of one timer
	// tick (reference value: 10 ms).
	MSPerTick int `yaml:"ms_per_tick"`

	// TableCapacity is the fixed number of PCB slots.
	TableCapacity int `yaml:"table_capacity"`

	// MinPriority and MaxPriority bound the clamped range do_setpriority
	// enforces.
	MinPriority int `yaml:"min_priority"`
	MaxPriority int `yaml:"max_priority"`
}

// DefaultConfig returns a reasonable default configuration: a 10ms tick, a
// modestly sized PCB table, and priorities in [0, 31].
func DefaultConfig() Config {
	return Config{
		MSPerTick:     10,
		TableCapacity: 64,
		MinPriority:   0,
		MaxPriority:   31,
	}
}

// Verify rejects configurations that cannot be made sense of; it never
// clamps (clamping is reserved for runtime priority values, not for the
// ranges themselves).
func (c Config) Verify() error {
	if c.MSPerTick <= 0 {
		return fmt.Errorf("kernel: config: ms_per_tick must be positive, got %d", c.MSPerTick)
	}
	if c.TableCapacity <= 0 {
		return fmt.Errorf("kernel: config: table_capacity must be positive, got %d", c.TableCapacity)
	}
	if c.MinPriority > c.MaxPriority {
		return fmt.Errorf("kernel: config: min_priority (%d) exceeds max_priority (%d)", c.MinPriority, c.MaxPriority)
	}
	return nil
}

// clampPriority clamps p into [MinPriority, MaxPriority].
func (c Config) clampPriority(p int) int {
	if p < c.MinPriority {
		return c.MinPriority
	}
	if p > c.MaxPriority {
		return c.MaxPriority
	}
	return p
}

// ticksForMillis computes ceil(ms / MSPerTick), the wakeup horizon used by
// do_sleep.
func (c Config) ticksForMillis(ms int) uint64 {
	if ms <= 0 {
		return 0
	}
	ticks := ms / c.MSPerTick
	if ms%c.MSPerTick != 0 {
		ticks++
	}
	return uint64(ticks)
}

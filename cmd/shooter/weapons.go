package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-shooter/internal/shooter"
)

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List all available weapons",
	Long:  `Shows every registered weapon with its live cap and ammunition.`,
	Args:  cobra.NoArgs,
	Run:   runWeapons,
}

func runWeapons(cmd *cobra.Command, args []string) {
	weapons := shooter.Weapons()

	// Ammo caps come from a fresh engine.
	e := shooter.New()

	fmt.Println("Available weapons:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, w := range weapons {
		maxIDLen = max(maxIDLen, len(w.ID))
	}

	fmt.Printf("  %-*s  %-18s  %-9s  %s\n", maxIDLen, "ID", "Title", "Live cap", "Ammo")
	fmt.Printf("  %-*s  %-18s  %-9s  %s\n", maxIDLen, "--", "-----", "--------", "----")

	for _, w := range weapons {
		if err := e.SelectWeapon(w.ID); err != nil {
			continue
		}
		a := e.Ammo(e.ActiveFamily())
		fmt.Printf("  %-*s  %-18s  %-9s  %s\n", maxIDLen, w.ID, w.Title, capText(a.Cap), ammoText(a))
	}

	fmt.Println()
	fmt.Println("Select weapons in game with 1-4, or 'shooter sim --weapon <id>'.")
}

func capText(c int) string {
	if c == math.MaxInt {
		return "unlimited"
	}
	return fmt.Sprint(c)
}

func ammoText(a shooter.Ammo) string {
	if !a.Limited() {
		return "unlimited"
	}
	return fmt.Sprint(a.Remaining)
}

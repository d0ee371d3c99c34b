package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

var errCooldown = errors.New("on cooldown")

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:8080"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "play":
		playCmd(apiURL, args)
	case "populate":
		populateCmd(apiURL, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Zoo Simulator - Development tool for exercising the battle API

USAGE:
  simulator <command> [options]

COMMANDS:
  play      Register a bot account and run a daily/hunt/team/battle loop
  populate  Register several bot accounts and run one play cycle each
  help      Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:8080)

EXAMPLES:
  # Register one bot and run five battles
  simulator play --battles=5

  # Populate the battle feed with three bots
  simulator populate --count=3`)
}

func playCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	battles := fs.Int("battles", 3, "Number of battles to run")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Println("=== Zoo Simulator: Play ===")
	fmt.Println()

	if err := runPlayCycle(client, "ZooBot", *battles); err != nil {
		fmt.Printf("FAILED: %v\n", err)
		os.Exit(1)
	}
}

func populateCmd(apiURL string, args []string) {
	fs := flag.NewFlagSet("populate", flag.ExitOnError)
	count := fs.Int("count", 3, "Number of bot accounts to create")
	battles := fs.Int("battles", 1, "Battles per bot")
	fs.Parse(args)

	client := NewAPIClient(apiURL)

	fmt.Printf("Populating with %d bots...\n\n", *count)

	for i := 0; i < *count; i++ {
		name := fmt.Sprintf("ZooBot%d", i+1)
		if err := runPlayCycle(client, name, *battles); err != nil {
			fmt.Printf("  [%d/%d] FAILED: %v\n", i+1, *count, err)
			continue
		}
		fmt.Printf("  [%d/%d] %s finished\n", i+1, *count, name)
	}
}

// runPlayCycle registers a bot, funds it with the daily grant, hunts until a
// full team exists, and then battles on cooldown.
func runPlayCycle(client *APIClient, baseName string, battles int) error {
	fmt.Printf("Registering %s... ", baseName)
	account, err := client.RegisterUser(baseName)
	if err != nil {
		fmt.Println("FAILED")
		return err
	}
	fmt.Printf("OK (user: %s)\n", account.DisplayName)

	daily, err := client.ClaimDaily(account.AccessToken)
	if err != nil {
		return err
	}
	fmt.Printf("Daily claimed: +%d coins, +%d energy\n", daily.Coins, daily.Energy)

	if err := assembleTeam(client, account.AccessToken); err != nil {
		return err
	}

	wins := 0
	for i := 0; i < battles; i++ {
		result, err := battleWithRetry(client, account.AccessToken)
		if err != nil {
			return err
		}
		outcome := "lost"
		if result.Won {
			outcome = "WON"
			wins++
		}
		fmt.Printf("  Battle %d: %s in %d rounds (%.1f vs %.1f), +%d coins\n",
			i+1, outcome, result.Rounds, result.PlayerPower, result.EnemyPower, result.CoinsAwarded)
	}

	fmt.Printf("Done: %d/%d battles won\n\n", wins, battles)
	return nil
}

// assembleTeam hunts until the zoo covers all three roles, then fills the
// team slots with the first owned animal per role.
func assembleTeam(client *APIClient, token string) error {
	roleSlots := map[string]int{"TANK": 1, "ATTACK": 2, "SUPPORT": 3}

	for attempt := 0; attempt < 40; attempt++ {
		zoo, err := client.Zoo(token)
		if err != nil {
			return err
		}

		type pick struct {
			animalID string
			mutation string
		}
		chosen := map[int]pick{}
		for _, entry := range zoo {
			slot, ok := roleSlots[entry.Animal.Role]
			if !ok {
				continue
			}
			if _, taken := chosen[slot]; taken {
				continue
			}
			for mutation, count := range entry.Counts {
				if count > 0 {
					chosen[slot] = pick{animalID: entry.Animal.ID, mutation: mutation}
					break
				}
			}
		}

		if len(chosen) == len(roleSlots) {
			for slot, p := range chosen {
				if err := client.SetSlot(token, slot, p.animalID, p.mutation); err != nil {
					return err
				}
			}
			fmt.Printf("Team assembled: %s / %s / %s\n",
				chosen[1].animalID, chosen[2].animalID, chosen[3].animalID)
			return nil
		}

		result, err := client.Hunt(token)
		if err != nil {
			return err
		}
		for _, drop := range result.Drops {
			fmt.Printf("  Hunted %s %s (%s)\n", drop.Animal.Emoji, drop.Animal.ID, drop.Mutation)
		}

		// Hunt cooldown
		time.Sleep(11 * time.Second)
	}

	return fmt.Errorf("could not cover all roles after hunting")
}

func battleWithRetry(client *APIClient, token string) (*BattleResult, error) {
	for {
		result, err := client.Battle(token)
		if errors.Is(err, errCooldown) {
			time.Sleep(2 * time.Second)
			continue
		}
		return result, err
	}
}

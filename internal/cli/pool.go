package cli

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/ammpool/internal/pool"
	"github.com/LeJamon/ammpool/internal/poolconfig"
	"github.com/LeJamon/ammpool/internal/pooltx"
	"github.com/LeJamon/ammpool/internal/storage"
	"github.com/LeJamon/ammpool/internal/token"
)

// demoLedgers backs the CLI's token collaborators. A real deployment
// wires internal/pool.Tokens to whatever token issuer the host ledger
// provides; since that collaborator is explicitly out of this engine's
// scope, the CLI builds fresh in-memory ledgers per invocation. They
// start empty: no account is funded in them, so a transfer out of a
// sender's account fails with an insufficient balance.
var demoLedgers = struct {
	tokenA *token.MemoryLedger
	tokenB *token.MemoryLedger
	lp     *token.MemoryLedger
}{
	tokenA: token.NewMemoryLedger(),
	tokenB: token.NewMemoryLedger(),
	lp:     token.NewMemoryLedger(),
}

func parseAddress(s string) (token.Address, error) {
	var a token.Address
	b, err := hex.DecodeString(s)
	if err != nil {
		return a, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(b) != len(a) {
		return a, fmt.Errorf("address %q must be %d bytes hex-encoded", s, len(a))
	}
	copy(a[:], b)
	return a, nil
}

func openAdapter() (*pooltx.Adapter, error) {
	cfg, err := poolconfig.Load(configFile)
	if err != nil {
		return nil, err
	}

	var store storage.Store
	switch cfg.StorageBackend {
	case "pebble":
		store, err = storage.OpenPebbleStore(cfg.StoragePath)
	case "bolt":
		store, err = storage.OpenBoltStore(cfg.StoragePath)
	default:
		store = storage.NewMemStore()
	}
	if err != nil {
		return nil, err
	}

	tokens := pool.Tokens{
		TokenA:   demoLedgers.tokenA,
		TokenB:   demoLedgers.tokenB,
		LP:       demoLedgers.lp,
		PoolAddr: token.Address{},
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	return pooltx.New(store, tokens, logger), nil
}

var initPoolCmd = &cobra.Command{
	Use:   "init-pool",
	Short: "Initialize a new, empty pool from the loaded configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := poolconfig.Load(configFile)
		if err != nil {
			return err
		}
		a, err := openAdapter()
		if err != nil {
			return err
		}
		p := &pool.Pool{
			A:                 cfg.Amplification,
			FeeShareBP:        cfg.FeeShareBP,
			AdminFeeShareBP:   cfg.AdminFeeShareBP,
			BalanceRatioMinBP: cfg.BalanceRatioMinBP,
			DecimalsByToken:   pool.Decimals{A: cfg.DecimalsA, B: cfg.DecimalsB},
			DecimalsLP:        cfg.DecimalsLP,
		}
		if err := a.InitPool(context.Background(), p); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "pool initialized")
		return nil
	},
}

var (
	flagSender     string
	flagRecipient  string
	flagAmount     uint64
	flagReceiveMin uint64
	flagDirection  string
)

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Deposit combined liquidity into the pool",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAdapter()
		if err != nil {
			return err
		}
		sender, err := parseAddress(flagSender)
		if err != nil {
			return err
		}
		res, err := a.Deposit(context.Background(), sender, flagAmount)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "lp minted: %d, claimed reward: %d\n", res.LPMinted, res.ClaimedReward)
		return nil
	},
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Withdraw LP and receive a proportional share of both tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAdapter()
		if err != nil {
			return err
		}
		sender, err := parseAddress(flagSender)
		if err != nil {
			return err
		}
		if err := a.Withdraw(context.Background(), sender, flagAmount); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "withdraw applied")
		return nil
	},
}

var swapCmd = &cobra.Command{
	Use:   "swap",
	Short: "Swap amount of one token for the other",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAdapter()
		if err != nil {
			return err
		}
		sender, err := parseAddress(flagSender)
		if err != nil {
			return err
		}
		recipient := sender
		if flagRecipient != "" {
			recipient, err = parseAddress(flagRecipient)
			if err != nil {
				return err
			}
		}
		dir := pool.A2B
		if flagDirection == "b2a" {
			dir = pool.B2A
		}
		res, err := a.Swap(context.Background(), sender, recipient, flagAmount, flagReceiveMin, false, false, dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "result: %d, fee: %d\n", res.Result, res.Fee)
		return nil
	},
}

var claimCmd = &cobra.Command{
	Use:   "claim",
	Short: "Claim accrued LP rewards",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openAdapter()
		if err != nil {
			return err
		}
		sender, err := parseAddress(flagSender)
		if err != nil {
			return err
		}
		pending, err := a.ClaimRewards(context.Background(), sender)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "claimed: %d\n", pending)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{depositCmd, withdrawCmd, swapCmd, claimCmd} {
		c.Flags().StringVar(&flagSender, "sender", "", "hex-encoded 20-byte sender address")
		c.MarkFlagRequired("sender")
	}
	depositCmd.Flags().Uint64Var(&flagAmount, "amount", 0, "combined amount to deposit, system precision")
	withdrawCmd.Flags().Uint64Var(&flagAmount, "amount", 0, "LP amount to withdraw, system precision")
	swapCmd.Flags().Uint64Var(&flagAmount, "amount-in", 0, "input amount, system precision")
	swapCmd.Flags().Uint64Var(&flagReceiveMin, "receive-min", 0, "minimum acceptable output, external precision")
	swapCmd.Flags().StringVar(&flagRecipient, "recipient", "", "hex-encoded 20-byte recipient address (defaults to sender)")
	swapCmd.Flags().StringVar(&flagDirection, "direction", "a2b", "swap direction: a2b or b2a")

	rootCmd.AddCommand(initPoolCmd, depositCmd, withdrawCmd, swapCmd, claimCmd)
}

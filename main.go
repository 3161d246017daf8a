package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-sweeper/config"
	"github.com/beka-birhanu/vinom-sweeper/game"
	"github.com/beka-birhanu/vinom-sweeper/service"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	appLogger    *log.Logger
	boardManager *service.BoardManager

	width   int
	height  int
	mines   int
	seed    int64
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "vinom-sweeper",
		Short: "Play minesweeper in the terminal",
		Long: `Reads commands from stdin, one per line:
  r X Y   reveal the cell at column X, row Y
  f X Y   toggle the flag at column X, row Y
  p       print the board
  q       quit`,
		Args:          cobra.NoArgs,
		RunE:          runPlay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.Flags().IntVarP(&width, "width", "W", config.Envs.BoardWidth, "Number of columns")
	rootCmd.Flags().IntVarP(&height, "height", "H", config.Envs.BoardHeight, "Number of rows")
	rootCmd.Flags().IntVarP(&mines, "mines", "m", config.Envs.BoardMines, "Number of mines")
	rootCmd.Flags().Int64Var(&seed, "seed", config.Envs.Seed, "Seed for the mine layout, 0 for a random layout")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log board manager activity to stderr")
}

func initBoardManager() error {
	var managerLogger *log.Logger
	if verbose {
		managerLogger = log.New(os.Stderr, config.Prefix("BOARD-MANAGER", config.ManagerPrefixColor), log.LstdFlags)
	}

	var err error
	boardManager, err = service.NewBoardManager(&service.Config{
		BoardFactory: service.SeededBoardFactory(seed),
		MaxBoards:    config.Envs.MaxBoards,
		Logger:       managerLogger,
	})
	return err
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := initBoardManager(); err != nil {
		return fmt.Errorf("creating board manager: %w", err)
	}

	id, err := boardManager.Create(width, height, mines)
	if err != nil {
		return fmt.Errorf("creating board: %w", err)
	}
	defer func() {
		_ = boardManager.Destroy(id)
	}()

	return play(id, cmd.InOrStdin(), cmd.OutOrStdout())
}

// play runs the command loop until the game ends, the input is exhausted or
// the player quits.
func play(id uuid.UUID, in io.Reader, out io.Writer) error {
	printBoard(id, out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "q":
			return nil
		case "p":
			printBoard(id, out)
			continue
		case "r", "f":
		default:
			fmt.Fprintf(out, "unknown command %q\n", fields[0])
			continue
		}

		x, y, err := parsePosition(fields[1:])
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		if err := apply(id, fields[0], x, y); err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		printBoard(id, out)
		if status := boardManager.Status(id); status.IsTerminal() {
			printResult(id, status, out)
			return nil
		}
	}
	return scanner.Err()
}

func apply(id uuid.UUID, command string, x, y int) error {
	if command == "f" {
		return boardManager.ToggleFlag(id, x, y)
	}

	// The first reveal lays the mines around the clicked cell.
	if boardManager.Status(id) == game.StatusStarted {
		if err := boardManager.Initialize(id, x, y); err != nil {
			return err
		}
	}
	_, err := boardManager.Reveal(id, x, y)
	return err
}

func parsePosition(args []string) (int, int, error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("expected two coordinates, got %d", len(args))
	}
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q", args[1])
	}
	return x, y, nil
}

func printBoard(id uuid.UUID, out io.Writer) {
	view, err := boardManager.Render(id)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s rendering board: %s", config.LogErrorColor, config.LogColorReset, err)
		return
	}
	fmt.Fprint(out, view)
}

func printResult(id uuid.UUID, status game.Status, out io.Writer) {
	if status == game.StatusVictory {
		fmt.Fprintln(out, "You win!")
		return
	}

	positions, err := boardManager.Mines(id)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s listing mines: %s", config.LogErrorColor, config.LogColorReset, err)
	}
	fmt.Fprintf(out, "Boom! Mines were at %v\n", positions)
}

func main() {
	appLogger = log.New(os.Stderr, config.Prefix("APP", config.AppPrefixColor), log.LstdFlags)

	if err := rootCmd.Execute(); err != nil {
		appLogger.Printf("%s[ERROR]%s %s", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
}

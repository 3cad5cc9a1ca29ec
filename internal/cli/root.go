package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/m04kA/SMC-PoolService/internal/integrations/poolapi"
	"github.com/m04kA/SMC-PoolService/pkg/logger"
)

const (
	keyAPIURL  = "api-url"
	keyUserID  = "user-id"
	keyTimeout = "timeout"

	defaultAPIURL  = "http://localhost:8080"
	defaultUserID  = "poolctl"
	defaultTimeout = 5 * time.Second
)

// NewRootCommand собирает дерево команд poolctl
// Флаги можно задать через окружение: POOLCTL_API_URL, POOLCTL_USER_ID, POOLCTL_TIMEOUT
func NewRootCommand() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "poolctl",
		Short: "Lane administration for SMC-PoolService",
		Long: `poolctl talks to a running SMC-PoolService instance and lets pool staff
inspect lane occupancy and take lanes in and out of service.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().String(keyAPIURL, defaultAPIURL, "base URL of the pool service")
	root.PersistentFlags().String(keyUserID, defaultUserID, "value sent in the X-User-ID header")
	root.PersistentFlags().Duration(keyTimeout, defaultTimeout, "HTTP request timeout")
	_ = v.BindPFlag(keyAPIURL, root.PersistentFlags().Lookup(keyAPIURL))
	_ = v.BindPFlag(keyUserID, root.PersistentFlags().Lookup(keyUserID))
	_ = v.BindPFlag(keyTimeout, root.PersistentFlags().Lookup(keyTimeout))

	v.SetEnvPrefix("POOLCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	newClient := func(cmd *cobra.Command) *poolapi.Client {
		log := logger.NewWithWriter(cmd.ErrOrStderr(), "error", nil)
		return poolapi.NewClient(v.GetString(keyAPIURL), v.GetDuration(keyTimeout), v.GetString(keyUserID), log)
	}

	root.AddCommand(
		newLanesCommand(newClient),
		newStatsCommand(newClient),
		newMaintenanceCommand(newClient),
		newReleaseCommand(newClient),
	)
	return root
}

type clientFactory func(cmd *cobra.Command) *poolapi.Client

func parseLaneArg(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid lane number %q", arg)
	}
	return n, nil
}

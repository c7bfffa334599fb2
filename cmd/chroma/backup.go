// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/chromabags/chromabags/internal/backup"
	"github.com/chromabags/chromabags/internal/config"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage database backups",
	Long:  "Commands for managing catalog database backups: create, list, restore, delete, and status",
}

// newManager builds a backup manager from config
func newManager() *backup.BackupManager {
	exitOnError(initConfig())
	if t := config.GetString("database.type"); t != "sqlite" {
		exitOnError(fmt.Errorf("backups only cover sqlite databases, database.type is %s", t))
	}
	return backup.NewBackupManager(config.GetString("backups.path"), config.GetString("database.path"))
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup now",
	Run: func(cmd *cobra.Command, args []string) {
		manager := newManager()

		meta, err := manager.CreateBackup()
		exitOnError(err)
		fmt.Printf("Created %s (%s)\n", meta.Filename, formatBytes(meta.Size))

		removed, err := manager.Prune(config.GetInt("backups.retention"))
		exitOnError(err)
		for _, name := range removed {
			fmt.Printf("Pruned %s\n", name)
		}
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backups",
	Run: func(cmd *cobra.Command, args []string) {
		backups, err := newManager().ListBackups()
		exitOnError(err)

		if len(backups) == 0 {
			fmt.Println("No backups found")
			return
		}

		fmt.Println("Available backups:")
		for i, b := range backups {
			fmt.Printf("%d. %s (%s, %s)\n", i+1, b.Filename, b.Timestamp.Format("2006-01-02 15:04:05"), formatBytes(b.Size))
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Restore the database from a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		manager := newManager()

		// Confirm restore (safety check)
		fmt.Printf("WARNING: This will overwrite the catalog database. Stop the server first.\n")
		fmt.Printf("Are you sure you want to restore from '%s'? (type 'yes' to confirm): ", filename)

		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			fmt.Println("Restore cancelled.")
			return
		}

		exitOnError(manager.RestoreBackup(filename))
		fmt.Printf("Successfully restored from %s\n", filename)
	},
}

var backupDeleteCmd = &cobra.Command{
	Use:   "delete <filename>",
	Short: "Delete a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		manager := newManager()

		fmt.Printf("Are you sure you want to delete '%s'? (type 'yes' to confirm): ", filename)

		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			fmt.Println("Deletion cancelled.")
			return
		}

		exitOnError(manager.DeleteBackup(filename))
		fmt.Printf("Successfully deleted %s\n", filename)
	},
}

var backupStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show backup status and statistics",
	Run: func(cmd *cobra.Command, args []string) {
		backups, err := newManager().ListBackups()
		exitOnError(err)

		var totalSize int64
		for _, b := range backups {
			totalSize += b.Size
		}

		fmt.Println("Backup Status:")
		fmt.Printf("  Auto backup: %v every %s, keeping %d\n",
			config.GetBool("backups.enable_auto_backup"), config.GetDuration("backups.interval"), config.GetInt("backups.retention"))
		fmt.Printf("  Total backups: %d\n", len(backups))
		fmt.Printf("  Total size: %s\n", formatBytes(totalSize))
		if len(backups) > 0 {
			fmt.Printf("  Newest backup: %s\n", backups[0].Timestamp.Format("2006-01-02 15:04:05"))
			fmt.Printf("  Oldest backup: %s\n", backups[len(backups)-1].Timestamp.Format("2006-01-02 15:04:05"))
		}
	},
}

// formatBytes converts bytes to human-readable format
func formatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)

	for _, unit := range units {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.2f TB", size)
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	backupCmd.AddCommand(backupDeleteCmd)
	backupCmd.AddCommand(backupStatusCmd)
}

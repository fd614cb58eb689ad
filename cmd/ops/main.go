// Command ops backs up and restores a lab data directory. Backups go
// through the save store so the archived database is a consistent
// snapshot even while the server is running against the same files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"labtycoon/internal/ops"
	"labtycoon/internal/persistence"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "backup":
		err = cmdBackup(os.Args[2:])
	case "restore":
		err = cmdRestore(os.Args[2:])
	case "drill":
		err = cmdDrill(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, os.Args[1]+" failed:", err)
		os.Exit(1)
	}
}

func cmdBackup(args []string) error {
	fs := flag.NewFlagSet("backup", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	out := fs.String("out", "", "output archive path (.tar.gz)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *out == "" {
		ts := time.Now().UTC().Format("20060102T150405Z")
		*out = filepath.Join("backups", "labtycoon-"+ts+".tar.gz")
	}
	if err := backupOnce(*dataDir, *out); err != nil {
		return err
	}
	fmt.Println(*out)
	return nil
}

// backupOnce snapshots the save database with VACUUM INTO, then
// archives the snapshot together with the rest of the data directory.
func backupOnce(dataDir, out string) error {
	store, err := persistence.Open(filepath.Join(dataDir, ops.SaveFileName))
	if err != nil {
		return fmt.Errorf("open save store: %w", err)
	}
	defer store.Close()

	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	snapshot := out + ".snapshot"
	if err := store.SnapshotTo(context.Background(), snapshot); err != nil {
		return err
	}
	defer os.Remove(snapshot)

	return ops.BackupLab(dataDir, snapshot, out)
}

func cmdRestore(args []string) error {
	fs := flag.NewFlagSet("restore", flag.ContinueOnError)
	archive := fs.String("archive", "", "input backup archive (.tar.gz)")
	target := fs.String("target-dir", "data-restored", "restore target directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *archive == "" {
		return fmt.Errorf("archive is required")
	}
	return ops.RestoreLab(*archive, *target)
}

// cmdDrill runs a full backup-restore cycle against a scratch
// directory, then proves the restored database still holds a loadable
// save. That is the property an operator actually needs, not byte
// equality with the live directory.
func cmdDrill(args []string) error {
	fs := flag.NewFlagSet("drill", flag.ContinueOnError)
	dataDir := fs.String("data-dir", "data", "path to data directory")
	workDir := fs.String("work-dir", os.TempDir(), "temporary workspace for drill artifacts")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*workDir, 0o755); err != nil {
		return err
	}
	ts := time.Now().UTC().Format("20060102T150405Z")
	archive := filepath.Join(*workDir, "labtycoon-drill-"+ts+".tar.gz")
	restoreDir := filepath.Join(*workDir, "labtycoon-drill-restore-"+ts)

	if err := backupOnce(*dataDir, archive); err != nil {
		return err
	}
	if err := ops.RestoreLab(archive, restoreDir); err != nil {
		return err
	}

	restored, err := persistence.Open(filepath.Join(restoreDir, ops.SaveFileName))
	if err != nil {
		return fmt.Errorf("open restored save store: %w", err)
	}
	defer restored.Close()

	st, found, err := restored.Load(context.Background())
	if err != nil {
		return fmt.Errorf("restored save does not load: %w", err)
	}

	fmt.Println("backup:", archive)
	fmt.Println("restored:", restoreDir)
	if !found {
		fmt.Println("save: none (fresh lab)")
		return nil
	}
	fmt.Printf("save: tick=%d funding=%.0f research=%.0f\n", st.Tick, st.Funding, st.ResearchPoints)
	return nil
}

func printUsage() {
	fmt.Println("usage:")
	fmt.Println("  labtycoon-ops backup  --data-dir data --out backups/backup.tar.gz")
	fmt.Println("  labtycoon-ops restore --archive backups/backup.tar.gz --target-dir data-restored")
	fmt.Println("  labtycoon-ops drill   --data-dir data --work-dir /tmp")
}

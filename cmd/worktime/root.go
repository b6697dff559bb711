package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"worktime/internal/app"
	"worktime/internal/config"
	"worktime/internal/console"
	"worktime/internal/database"
	"worktime/internal/export"
	"worktime/internal/models"

	"github.com/spf13/cobra"
)

type options struct {
	dbPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "worktime",
		Short: "Учёт рабочего времени сотрудников",
		Long: `worktime хранит отметки прихода и ухода сотрудников в SQLite
и строит личные отчёты и табели с доступом по ролям Employee, HR, Manager, Admin.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "путь к файлу БД (по умолчанию DATABASE_URL)")

	root.AddCommand(
		newMenuCmd(opts),
		newInitDBCmd(opts),
		newDemoCmd(opts),
		newTimesheetCmd(opts),
		newExportCmd(opts),
	)
	return root
}

func (o *options) config() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if o.dbPath != "" {
		cfg.DatabaseURL = o.dbPath
	}
	return cfg, nil
}

func (o *options) open() (*app.App, error) {
	cfg, err := o.config()
	if err != nil {
		return nil, err
	}
	return app.New(cfg, nil)
}

func newMenuCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Вход и интерактивное меню",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, opts)
		},
	}
}

func runMenu(cmd *cobra.Command, opts *options) error {
	a, err := opts.open()
	if err != nil {
		return err
	}
	defer a.Close()

	menu := console.NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), a.Services, a.Config.ClockSource, a.Logger)
	return menu.Run()
}

func newInitDBCmd(opts *options) *cobra.Command {
	var seed, keep bool

	cmd := &cobra.Command{
		Use:   "init-db",
		Short: "Пересоздать базу данных",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			if !keep && isFilePath(cfg.DatabaseURL) {
				if err := database.Reset(cfg.DatabaseURL); err != nil {
					return err
				}
			}

			a, err := app.New(cfg, nil)
			if err != nil {
				return err
			}
			defer a.Close()

			if seed {
				if err := a.Seed(); err != nil {
					return fmt.Errorf("seed: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Тестовые данные добавлены.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Готово. База данных пересоздана в файле %q\n", cfg.DatabaseURL)
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "добавить тестовые данные")
	cmd.Flags().BoolVar(&keep, "keep", false, "не удалять существующий файл")
	return cmd
}

// isFilePath отличает обычный путь от DSN вида file:...?mode=memory и :memory:
func isFilePath(dsn string) bool {
	return dsn != "" && !strings.HasPrefix(dsn, "file:") && !strings.Contains(dsn, ":memory:")
}

func newDemoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Показать содержимое базы",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			return console.Demo(cmd.OutOrStdout(), a.Services)
		},
	}
}

func newTimesheetCmd(opts *options) *cobra.Command {
	var from, to, department, csvPath, pdfPath string

	cmd := &cobra.Command{
		Use:   "timesheet",
		Short: "Табель за период",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := models.ParseDate(from)
			if err != nil {
				return err
			}
			end, err := models.ParseDate(to)
			if err != nil {
				return err
			}

			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			var dept *string
			if cmd.Flags().Changed("department") {
				dept = &department
			}

			rows, err := a.Services.Reports.GenerateTimesheet(start, end, dept)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "Нет данных за указанный период.")
				return nil
			}
			console.PrintTable(out, []string{"Отдел", "ФИО", "Дата", "Часы"}, console.TimesheetTable(rows))

			if csvPath != "" {
				if err := export.WriteFile(csvPath, func(w io.Writer) error {
					return export.WriteTimesheetCSV(w, rows)
				}); err != nil {
					return err
				}
				fmt.Fprintf(out, "Табель экспортирован в %s\n", csvPath)
			}

			if pdfPath != "" {
				pdfOpts := export.PDFOptions{
					Title:    fmt.Sprintf("Табель %s - %s", start, end),
					FontPath: a.Config.PDFFont,
				}
				if err := export.WriteFile(pdfPath, func(w io.Writer) error {
					return export.WriteTimesheetPDF(w, rows, pdfOpts)
				}); err != nil {
					return err
				}
				fmt.Fprintf(out, "Табель сохранён в %s\n", pdfPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "дата начала периода YYYY-MM-DD")
	cmd.Flags().StringVar(&to, "to", "", "дата окончания периода YYYY-MM-DD")
	cmd.Flags().StringVar(&department, "department", "", "отдел (по умолчанию вся организация)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "сохранить табель в CSV")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "сохранить табель в PDF")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Выгрузить сотрудников и рабочие дни в JSON, CSV, XML и YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.open()
			if err != nil {
				return err
			}
			defer a.Close()

			if dir == "" {
				dir = a.Config.ExportDir
			}

			rows, err := a.Services.Reports.EmployeeWorkDays()
			if err != nil {
				return err
			}

			paths, err := export.All(dir, rows)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "%s сохранён в %s\n", strings.ToUpper(strings.TrimPrefix(filepath.Ext(p), ".")), p)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Экспорт завершён.")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "каталог для выгрузок (по умолчанию EXPORT_DIR)")
	return cmd
}

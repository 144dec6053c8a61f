package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"os"

	"github.com/infinivision/anxiety/constant"
	"github.com/infinivision/anxiety/devq"
	"github.com/infinivision/anxiety/elevator"
	"github.com/infinivision/anxiety/scheduler"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type workload struct {
	Syncs  int    `yaml:"syncs"`
	Asyncs int    `yaml:"asyncs"`
	Ratio  *uint8 `yaml:"sync_ratio"` // absent means the default; 0 is a real setting
	Seed   int64  `yaml:"seed"`
	Disk   string `yaml:"disk"`
}

var (
	file string

	rootCmd = &cobra.Command{
		Use:   "anxsim",
		Short: "drive a synthetic workload through the anxiety scheduler",
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "run the workload described by a yaml file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(file)
		},
	}
)

func init() {
	runCmd.Flags().StringVarP(&file, "workload", "w", "workload.yaml", "workload file")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(file string) error {
	var w workload

	data, err := ioutil.ReadFile(file)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	cfg := elevator.DefaultConfig()
	if w.Ratio != nil {
		cfg.SyncRatio = *w.Ratio
	}
	cfg.Registry = reg
	dq := devq.New()
	q, err := elevator.New(constant.DefaultName, dq, cfg)
	if err != nil {
		return err
	}
	defer q.Close()
	r := rand.New(rand.NewSource(w.Seed))
	for i := 0; i < w.Syncs+w.Asyncs; i++ {
		q.Add(&scheduler.Request{
			Sync:   i < w.Syncs,
			Write:  true,
			Sector: int64(r.Intn(1 << 20)),
			Data:   make([]byte, constant.BlockSize),
		})
	}
	// with a zero ratio a cycle can move nothing, so stop once the device
	// queue quits growing
	cycles := 0
	for prev := -1; dq.Len() > prev; {
		prev = dq.Len()
		if !q.Dispatch() {
			break
		}
		cycles++
	}
	fmt.Printf("%v cycles, %v requests in device order\n", cycles, dq.Len())
	if len(w.Disk) > 0 {
		d, err := devq.NewDisk(w.Disk)
		if err != nil {
			return err
		}
		defer d.Close()
		for rq := dq.Pop(); rq != nil; rq = dq.Pop() {
			if err := d.Do(rq); err != nil {
				log.Fatal(err)
			}
		}
		if err := d.Flush(); err != nil {
			return err
		}
	}
	mfs, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("%s%v: %v\n", mf.GetName(), labels(m.GetLabel()), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				fmt.Printf("%s%v: %v\n", mf.GetName(), labels(m.GetLabel()), m.GetGauge().GetValue())
			}
		}
	}
	return nil
}

func labels(xs []*dto.LabelPair) string {
	if len(xs) == 0 {
		return ""
	}
	s := "{"
	for i, x := range xs {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprintf("%s=%s", x.GetName(), x.GetValue())
	}
	return s + "}"
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hymkor/trash-go"
	"golang.org/x/term"

	"iconkit/batch"
	"iconkit/config"
	"iconkit/utils"
)

func main() {
	var workDir, cfgPath, logo string
	var useTrash bool
	flag.StringVar(&workDir, "d", "", "工作目录（默认当前目录）")
	flag.StringVar(&cfgPath, "c", "", "TOML 配置文件，覆盖默认颜色与尺寸")
	flag.StringVar(&logo, "logo", "", "Logo 路径（默认 "+config.DefaultLogoPath+"）")
	flag.BoolVar(&useTrash, "t", false, "生成前将旧图标放入回收站")
	flag.Parse()

	if workDir == "" {
		workDir = flag.Arg(0)
	}
	workDir = utils.ParseWorkDir(workDir)

	log := &utils.Logger{ID: "icons", Plain: !term.IsTerminal(int(os.Stdout.Fd()))}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Error("配置错误：", err)
			os.Exit(1)
		}
	}
	if logo != "" {
		cfg.LogoPath = logo
	}

	fmt.Println("----------Android 图标生成----------")
	fmt.Printf("工作目录：%s\n", workDir)

	g := &batch.Generator{Config: cfg, Root: workDir, Log: log}
	if useTrash {
		g.Discard = func(paths ...string) error {
			for _, p := range paths {
				if err := trash.Throw(p); err != nil {
					return err
				}
			}
			return nil
		}
	}
	if _, err := g.Run(); err != nil {
		log.Error("生成失败：", err)
		os.Exit(1)
	}
	fmt.Println("生成成功")
}

package core

import (
	"fmt"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// ReadProperties 讀取對應環境的遊戲設定，回傳畫面更新間隔(毫秒)
func ReadProperties(env string) int {
	viper.SetConfigName(fmt.Sprintf("%s/%s", "properties", env))
	viper.SetConfigType("properties")
	viper.AddConfigPath("./")

	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("Fatal error config file: %w \n", err))
	}

	frameDelay := cast.ToInt(viper.Get("FRAME_DELAY"))
	return frameDelay
}

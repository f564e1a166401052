package config

import "os"

// configer is the process wide config. It starts out reading the environment and the .env
// file named by TOOLREC_DOTENV_PATH, and is replaced once the command line has been parsed.
var configer Configer = NewDotenvConfig(os.Getenv("TOOLREC_DOTENV_PATH"))

func SetConfig(c Configer) {
	configer = c
}

func GetConfig() Configer {
	return configer
}

func GetIntKeyWithDefault(key string, defaultValue int) int {
	return configer.GetIntKeyWithDefault(key, defaultValue)
}

// Package config provides configuration parsing for the elattr CLI.
//
// The configuration is stored in elattr.json in the working directory.
// Every field is optional; missing fields take their defaults.
//
// # Configuration File Structure
//
//	{
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "enabled": false,
//	    "namespace": "elattr"
//	  },
//	  "tracing": {
//	    "tracerName": "elattr"
//	  },
//	  "output": {
//	    "color": true
//	  },
//	  "server": {
//	    "addr": ":8080",
//	    "maxBodyBytes": 1048576,
//	    "allowedOrigins": []
//	  },
//	  "s3": {
//	    "region": "eu-west-1",
//	    "endpoint": "",
//	    "usePathStyle": false
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	logger := slog.New(cfg.Log.Handler(os.Stderr))
package config

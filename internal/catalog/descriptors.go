package catalog

// Generated tool catalog for the Semrush Analytics API.
//
// Domain, keyword, and URL reports hit GET / with a fixed type= query param;
// backlinks reports hit GET /analytics/v1/. All analytics reports return the
// semicolon-delimited tabular format.

// Databases lists the Semrush regional database codes accepted by the
// database parameter.
var Databases = []string{
	"us", "uk", "ca", "au", "de", "fr", "es", "it", "nl", "be",
	"ch", "at", "dk", "fi", "se", "no", "pl", "pt", "gr", "cz",
	"hu", "ro", "ie", "il", "tr", "ru", "ua", "br", "ar", "mx",
	"cl", "co", "pe", "in", "jp", "kr", "sg", "hk", "tw", "th",
	"id", "my", "ph", "vn", "za", "nz", "mobile-us",
}

// targetTypes lists the accepted backlinks target scopes.
var targetTypes = []string{"root_domain", "domain", "url"}

func databaseParam(required bool) Param {
	return Param{
		Name:        "database",
		Type:        TypeString,
		Description: "Regional database code (e.g. 'us', 'uk', 'de').",
		Required:    required,
		In:          InQuery,
		Enum:        Databases,
	}
}

func domainParam() Param {
	return Param{
		Name:        "domain",
		Type:        TypeString,
		Description: "Domain name to analyze (e.g. 'example.com').",
		Required:    true,
		In:          InQuery,
	}
}

func phraseParam(desc string) Param {
	return Param{
		Name:        "phrase",
		Type:        TypeString,
		Description: desc,
		Required:    true,
		In:          InQuery,
	}
}

func urlParam() Param {
	return Param{
		Name:        "url",
		Type:        TypeString,
		Description: "Exact URL to analyze (e.g. 'https://example.com/page').",
		Required:    true,
		In:          InQuery,
	}
}

func displayLimit() Param {
	return Param{
		Name:        "display_limit",
		Type:        TypeNumber,
		Description: "Maximum number of rows to return (default 10).",
		In:          InQuery,
	}
}

func displayOffset() Param {
	return Param{
		Name:        "display_offset",
		Type:        TypeNumber,
		Description: "Number of rows to skip before returning results.",
		In:          InQuery,
	}
}

func exportColumns(desc string) Param {
	return Param{
		Name:        "export_columns",
		Type:        TypeArray,
		Description: desc,
		In:          InQuery,
	}
}

func displaySort() Param {
	return Param{
		Name:        "display_sort",
		Type:        TypeString,
		Description: "Sort order, column code plus direction (e.g. 'tr_desc', 'po_asc').",
		In:          InQuery,
	}
}

func displayDate() Param {
	return Param{
		Name:        "display_date",
		Type:        TypeString,
		Description: "Report date in YYYYMM15 format (e.g. '20240615').",
		In:          InQuery,
	}
}

func backlinksTarget() Param {
	return Param{
		Name:        "target",
		Type:        TypeString,
		Description: "Root domain, domain, or URL to inspect (e.g. 'example.com').",
		Required:    true,
		In:          InQuery,
	}
}

func backlinksTargetType() Param {
	return Param{
		Name:        "target_type",
		Type:        TypeString,
		Description: "Scope of the target: root_domain, domain, or url.",
		In:          InQuery,
		Enum:        targetTypes,
		Default:     "root_domain",
	}
}

// domainReport builds a descriptor for a GET / domain/keyword/URL report.
func domainReport(name, reportType, description string, params ...Param) Descriptor {
	return Descriptor{
		Name:        name,
		Description: description,
		Method:      "GET",
		Path:        "/",
		Fixed:       map[string]string{"type": reportType},
		Params:      params,
		Format:      FormatDelimited,
	}
}

// backlinksReport builds a descriptor for a GET /analytics/v1/ backlinks report.
func backlinksReport(name, reportType, description string, params ...Param) Descriptor {
	base := []Param{backlinksTarget(), backlinksTargetType()}
	return Descriptor{
		Name:        name,
		Description: description,
		Method:      "GET",
		Path:        "/analytics/v1/",
		Fixed:       map[string]string{"type": reportType},
		Params:      append(base, params...),
		Format:      FormatDelimited,
	}
}

// Descriptors returns the full generated tool catalog.
func Descriptors() []Descriptor {
	return []Descriptor{
		// --- Domain reports ---
		domainReport("domain_overview", "domain_ranks",
			"Get a domain's overview: authority rank, organic/paid keyword counts, traffic and traffic cost.",
			domainParam(), databaseParam(false),
			exportColumns("Columns to return (e.g. Db, Dn, Rk, Or, Ot, Oc, Ad, At, Ac)."),
			displayDate()),
		domainReport("domain_overview_history", "domain_rank_history",
			"Get a domain's ranking and traffic history over time.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Rk, Or, Ot, Oc, Ad, At, Ac, Dt)."),
			displaySort(),
			Param{Name: "display_daily", Type: TypeBoolean, In: InQuery,
				Description: "Return daily rows for the last 31 days instead of monthly."}),
		domainReport("domain_organic_keywords", "domain_organic",
			"List keywords a domain ranks for in organic search, with position, volume, CPC, and traffic share.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Po, Pp, Pd, Nq, Cp, Ur, Tr, Tc)."),
			displaySort(), displayDate(),
			Param{Name: "display_positions", Type: TypeString, In: InQuery,
				Description: "Keyword position movements to include.",
				Enum:        []string{"new", "lost", "rise", "fall"}},
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows (e.g. '+|Ph|Co|shoes')."}),
		domainReport("domain_paid_keywords", "domain_adwords",
			"List keywords a domain bids on in paid search, with position, volume, CPC, and ad traffic share.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Po, Pp, Pd, Nq, Cp, Tr, Tc, Tt, Ds)."),
			displaySort(), displayDate(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		domainReport("domain_organic_competitors", "domain_organic_organic",
			"List a domain's organic search competitors ranked by competition level and shared keywords.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Dn, Cr, Np, Or, Ot, Oc, Ad)."),
			displaySort(), displayDate()),
		domainReport("domain_paid_competitors", "domain_adwords_adwords",
			"List a domain's paid search competitors ranked by shared paid keywords.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Dn, Cr, Np, Ad, At, Ac, Or)."),
			displaySort(), displayDate()),
		domainReport("domain_ad_copies", "domain_adwords_unique",
			"Get unique ad copies a domain has run, with titles, texts, visible URLs, and keyword counts.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Un, Tt, Ds, Vu, Ur, Pc)."),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		domainReport("domain_organic_pages", "domain_organic_unique",
			"List a domain's pages with the best organic rankings and their traffic share.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ur, Pc, Tg, Tr)."),
			displaySort(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		domainReport("domain_organic_subdomains", "domain_organic_subdomains",
			"List a domain's subdomains ranked by organic traffic share.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ur, Pc, Tg, Tr)."),
			displaySort()),
		domainReport("domain_pla_keywords", "domain_shopping",
			"List keywords that trigger a domain's product listing ads (PLA).",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Po, Pp, Nq, Cp, Ur, Tt, Pr)."),
			displaySort(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		domainReport("domain_pla_copies", "domain_shopping_unique",
			"Get unique product listing ad copies a domain has run, with titles, prices, and keyword counts.",
			domainParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Tt, Pr, Ur, Pc)."),
			displaySort()),
		domainReport("domain_vs_domain", "domain_domains",
			"Compare up to five domains by common, unique, or all keywords.",
			databaseParam(true),
			Param{Name: "domains", Type: TypeString, Required: true, In: InQuery,
				Description: "Domain comparison expression, e.g. '*|or|domain1.com|*|or|domain2.com'."},
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, P0, P1, P2, Nq, Cp, Co)."),
			displaySort(), displayDate()),

		// --- Keyword reports ---
		domainReport("keyword_overview", "phrase_this",
			"Get a keyword's volume, CPC, competition level, and result count in one database.",
			phraseParam("Keyword phrase to analyze (e.g. 'running shoes')."),
			databaseParam(true),
			exportColumns("Columns to return (e.g. Ph, Nq, Cp, Co, Nr)."),
			displayDate()),
		domainReport("keyword_overview_all_databases", "phrase_all",
			"Get a keyword's volume, CPC, and competition across every regional database.",
			phraseParam("Keyword phrase to analyze."),
			databaseParam(false),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Db, Dt, Ph, Nq, Cp, Co, Nr).")),
		domainReport("batch_keyword_overview", "phrase_these",
			"Get overview metrics for up to 100 keywords at once; separate phrases with semicolons.",
			phraseParam("Keyword phrases separated by semicolons (e.g. 'seo;sem;serp')."),
			databaseParam(true),
			exportColumns("Columns to return (e.g. Ph, Nq, Cp, Co, Nr)."),
			displayDate()),
		domainReport("keyword_organic_results", "phrase_organic",
			"List domains ranking in organic results for a keyword.",
			phraseParam("Keyword phrase to analyze."),
			databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Dn, Ur, Fk, Fp)."),
			displayDate()),
		domainReport("keyword_paid_results", "phrase_adwords",
			"List domains bidding on a keyword in paid search results.",
			phraseParam("Keyword phrase to analyze."),
			databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Dn, Ur, Vu)."),
			displayDate()),
		domainReport("related_keywords", "phrase_related",
			"List keywords related to a seed phrase, with volume, CPC, and relevance.",
			phraseParam("Seed keyword phrase."),
			databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Nq, Cp, Co, Nr, Td, Rr, Fk)."),
			displaySort(), displayDate(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		domainReport("broad_match_keywords", "phrase_fullsearch",
			"List broad matches and alternate orderings of a seed phrase.",
			phraseParam("Seed keyword phrase."),
			databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Nq, Cp, Co, Nr, Td, Fk)."),
			displaySort(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		domainReport("phrase_questions", "phrase_questions",
			"List question-form keywords containing a seed phrase.",
			phraseParam("Seed keyword phrase."),
			databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Nq, Cp, Co, Nr, Td)."),
			displaySort()),
		domainReport("keyword_difficulty", "phrase_kdi",
			"Get the difficulty score (0-100) of ranking organically for up to 100 keywords; separate phrases with semicolons.",
			phraseParam("Keyword phrases separated by semicolons (e.g. 'running shoes')."),
			databaseParam(true),
			exportColumns("Columns to return (e.g. Ph, Kd).")),
		domainReport("keyword_ads_history", "phrase_adwords_historical",
			"Get twelve months of paid-search history for a keyword: which domains bid on it and their ads.",
			phraseParam("Keyword phrase to analyze."),
			databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Dn, Dt, Po, Ur, Tt, Ds, Vu, At, Ac, Ad).")),

		// --- URL reports ---
		domainReport("url_organic_keywords", "url_organic",
			"List keywords a specific URL ranks for in organic search.",
			urlParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Po, Nq, Cp, Co, Kd, Tr, Tg, Tc)."),
			displaySort(), displayDate()),
		domainReport("url_paid_keywords", "url_adwords",
			"List keywords a specific URL bids on in paid search.",
			urlParam(), databaseParam(true),
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. Ph, Po, Nq, Cp, Co, Tr, Tg, Tc)."),
			displaySort(), displayDate()),

		// --- Backlinks reports ---
		backlinksReport("backlinks", "backlinks",
			"List backlinks pointing to a domain, root domain, or URL, with source/target pages and anchors.",
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. page_ascore, source_url, target_url, anchor, nofollow, first_seen, last_seen)."),
			displaySort(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		backlinksReport("backlinks_overview", "backlinks_overview",
			"Get backlink totals for a target: authority score, backlink count, referring domains and IPs.",
			exportColumns("Columns to return (e.g. ascore, total, domains_num, urls_num, ips_num, texts_num, follows_num, nofollows_num).")),
		backlinksReport("referring_domains", "backlinks_refdomains",
			"List domains linking to a target, with backlink counts and first/last seen dates.",
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. domain_ascore, domain, backlinks_num, ip, country, first_seen, last_seen)."),
			displaySort(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		backlinksReport("referring_ips", "backlinks_refips",
			"List IP addresses hosting backlinks to a target.",
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. ip, country, domains_num, backlinks_num, first_seen, last_seen)."),
			displaySort()),
		backlinksReport("backlink_anchors", "backlinks_anchors",
			"List anchor texts used in backlinks to a target, with usage counts.",
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. anchor, domains_num, backlinks_num, first_seen, last_seen)."),
			displaySort()),
		backlinksReport("indexed_pages", "backlinks_pages",
			"List a target's pages that have backlinks pointing at them.",
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. source_url, source_title, response_code, backlinks_num, domains_num, last_seen)."),
			displaySort(),
			Param{Name: "display_filter", Type: TypeString, In: InQuery,
				Description: "Filter expression for rows."}),
		backlinksReport("backlinks_competitors", "backlinks_competitors",
			"List domains with backlink profiles similar to the target's.",
			displayLimit(), displayOffset(),
			exportColumns("Columns to return (e.g. ascore, neighbour, similarity, common_refdomains, domains_num, backlinks_num).")),
		backlinksReport("authority_score_profile", "backlinks_ascore_profile",
			"Get the distribution of referring domains by authority score for a target.",
			exportColumns("Columns to return (e.g. ascore, domains_num).")),
	}
}

package modifier

// table lists every modifier the game data is known to use.
var table = []Descriptor{
	{ID: "accept_vassalization_reasons", Name: "Vassalization Acceptance", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "acolytes_influence_modifier", Name: "Acolytes Influence", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "adeen_loyalty_modifier", Name: "Adeen Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "adm_advisor_cost", Name: "Administrative Advisor Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "adm_tech_cost_modifier", Name: "Administrative Technology Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "administrative_efficiency", Name: "Administrative Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "admiral_cost", Name: "Admiral Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "adventurers_loyalty_modifier", Name: "Adventurers Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "advisor_cost", Name: "Advisor Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "advisor_pool", Name: "Possible Advisors", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "ae_impact", Name: "Aggressive Expansion Impact", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "ahati_loyalty_modifier", Name: "Ahati Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "all_estate_loyalty_equilibrium", Name: "All Estates' Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "all_power_cost", Name: "All Power Costs", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "allowed_marine_fraction", Name: "Marines Force Limit", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "allowed_rajput_fraction", Name: "Allowed Rajput Fraction", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "army_tradition", Name: "Yearly Army Tradition", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "army_tradition_decay", Name: "Yearly Army Tradition Decay", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "army_tradition_from_battle", Name: "Army Tradition From Battles", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "artificers_loyalty_modifier", Name: "Artificers Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "artillery_barrage_cost", Name: "Artillery Barrage Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "artillery_cost", Name: "Artillery Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "artillery_fire", Name: "Artillery Fire", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "artillery_power", Name: "Artillery Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "artillery_shock", Name: "Artillery Shock", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "assault_fort_ability", Name: "Assault Fort ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "autonomy_change_time", Name: "Autonomy Change Cooldown", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "available_province_loot", Name: "Available Loot", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "backrow_artillery_damage", Name: "Artillery Damage from Back Row", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "blockade_efficiency", Name: "Blockade Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "build_cost", Name: "Construction Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "build_time", Name: "Construction Time", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "burghers_loyalty_modifier", Name: "Burghers Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "can_fabricate_for_vassals", Name: "May Fabricate Claims for Subjects", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "candidate_random_bonus", Name: "Random Candidate Bonus", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "capture_ship_chance", Name: "Chance to Capture Enemy Ships", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "caravan_power", Name: "Caravan Power", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "cav_to_inf_ratio", Name: "Cavalry to Infantry Ratio", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "cavalry_cost", Name: "Cavalry Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "cavalry_fire", Name: "Cavalry Fire", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "cavalry_flanking", Name: "Cavalry Flanking Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "cavalry_power", Name: "Cavalry Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "cavalry_shock", Name: "Cavalry Shock", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "center_of_trade_upgrade_cost", Name: "Center of Trade Upgrade Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "church_loyalty_modifier", Name: "Clergy Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "church_power_modifier", Name: "Religious Power", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "claim_duration", Name: "Claim Duration", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "coast_raid_range", Name: "Coastal Raiding Range", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "colonist_placement_chance", Name: "Settler Chance", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "colonists", Name: "Colonists", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "core_creation", Name: "Core-Creation Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "core_decay_on_your_own", Name: "Foreign Core Duration", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "culture_conversion_cost", Name: "Culture Conversion Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "culture_conversion_time", Name: "Culture Conversion Time", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "defensiveness", Name: "Fort Defence", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "development_cost", Name: "Development Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "development_cost_in_primary_culture", Name: "Development Cost in Primary Culture", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "devotion", Name: "Yearly Devotion", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "dip_advisor_cost", Name: "Diplomatic Advisor Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "dip_tech_cost_modifier", Name: "Diplomatic Technology Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "diplomatic_annexation_cost", Name: "Diplomatic Annexation Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "diplomatic_reputation", Name: "Diplomatic Reputation", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "diplomatic_upkeep", Name: "Diplomatic Relations", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "diplomats", Name: "Diplomats", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "discipline", Name: "Discipline", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "discovered_relations_impact", Name: "Covert Action Relation Impact", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "disengagement_chance", Name: "Ship Disengagement Chance", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "dragon_command_influence_modifier", Name: "Dragon Command Influence", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "dragon_command_loyalty_modifier", Name: "Dragon Command Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "drill_decay_modifier", Name: "Regiment Drill Loss", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "drill_gain_modifier", Name: "Army Drill Gain Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "elephant_command_influence_modifier", Name: "Elephant Command Influence", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "elephant_command_loyalty_modifier", Name: "Elephant Command Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "embargo_efficiency", Name: "Embargo Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "embracement_cost", Name: "Institution Embracement Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "enforce_religion_cost", Name: "Cost of enforcing religion through war", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "envoy_travel_time", Name: "Envoy Travel Time", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "establish_order_cost", Name: "Establish Local Organization Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "expand_administration_cost", Name: "Expand Administration Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "fabricate_claims_cost", Name: "Cost to fabricate claims", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "female_advisor_chance", Name: "Female Advisor Chance", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "fire_damage", Name: "Land Fire Damage", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "fire_damage_received", Name: "Fire Damage Received", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "flagship_cost", Name: "Flagship Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "fort_maintenance_modifier", Name: "Fort Maintenance", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "free_adm_policy", Name: "Administrative Free Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "free_dip_policy", Name: "Diplomatic Free Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "free_land_leader_pool", Name: "Land Leader(s) without Upkeep", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "free_leader_pool", Name: "Leader(s) without Upkeep", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "free_mil_policy", Name: "Military Free Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "free_policy", Name: "Free Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "galley_cost", Name: "Galley Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "galley_power", Name: "Galley Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "garrison_size", Name: "Garrison Size", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "general_cost", Name: "General Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "global_autonomy", Name: "Monthly Autonomy Change", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "global_colonial_growth", Name: "Global Settler Increase", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "global_foreign_trade_power", Name: "Trade Power Abroad", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_garrison_growth", Name: "National Garrison Growth", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_heathen_missionary_strength", Name: "Missionary Strength vs Heathens", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_heretic_missionary_strength", Name: "Missionary Strength vs Heretics", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_institution_spread", Name: "Institution Spread", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_manpower_modifier", Name: "National Manpower Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_missionary_strength", Name: "Missionary Strength", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_monthly_devastation", Name: "Global Monthly Devastation", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "global_naval_barrage_cost", Name: "Naval Barrage cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "global_naval_engagement_modifier", Name: "Global Naval Engagement Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_own_trade_power", Name: "Domestic Trade Power", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_prosperity_growth", Name: "Global Prosperity Growth", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_prov_trade_power_modifier", Name: "Provincial Trade Power Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_rebel_suppression_efficiency", Name: "Rebel Suppression Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_regiment_cost", Name: "Regiment Costs", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "global_regiment_recruit_speed", Name: "Recruitment Time", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "global_sailors", Name: "Sailor Increase", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "global_sailors_modifier", Name: "National Sailors Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_ship_cost", Name: "Ship Costs", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "global_ship_recruit_speed", Name: "Shipbuilding Time", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "global_ship_repair", Name: "Global Ship Repair", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_ship_trade_power", Name: "Ship Trade Power", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_spy_defence", Name: "Foreign Spy Detection", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_supply_limit_modifier", Name: "National Supply Limit Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_tariffs", Name: "Merchants", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_tax_modifier", Name: "National Tax Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_trade_goods_size_modifier", Name: "Goods Produced Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_trade_power", Name: "Global Trade Power", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "global_unrest", Name: "National Unrest", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "governing_capacity_modifier", Name: "Governing Capacity Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "great_project_upgrade_cost", Name: "Great Project Upgrade Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "harsh_treatment_cost", Name: "Harsh Treatment Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "heavy_ship_cost", Name: "Heavy Ship Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "heavy_ship_hull_size_modifier", Name: "Heavy Ship Hull Size", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "heavy_ship_power", Name: "Heavy Ship Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "heir_chance", Name: "Chance of New Heir", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "horde_unity", Name: "Yearly Horde Unity", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "hostile_attrition", Name: "Attrition for Enemies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "hull_size_modifier", Name: "Ship Hull Size", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "idea_claim_colonies", Name: "Can Fabricate Claims in any colonial region belonging to another nation who are also overseas from the province, or to their colonial nations", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "idea_cost", Name: "Idea Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "imperial_authority", Name: "Imperial Authority Growth Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "imperial_mandate", Name: "Monthly Mandate", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "improve_relation_modifier", Name: "Improve Relations", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "infantry_cost", Name: "Infantry Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "infantry_fire", Name: "Infantry Fire", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "infantry_power", Name: "Infantry Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "infantry_shock", Name: "Infantry Shock", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "inflation_action_cost", Name: "Reduce Inflation Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "inflation_reduction", Name: "Yearly Inflation Reduction", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "innovativeness_gain", Name: "Innovativeness Gain", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "institution_spread_from_true_faith", Name: "Institution Spread In True Faith Provinces", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "interest", Name: "Interest Per Annum", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "justify_trade_conflict_cost", Name: "Cost to justify trade conflict", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "land_attrition", Name: "Land Attrition", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "land_forcelimit_modifier", Name: "Land Force Limit Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "land_maintenance_modifier", Name: "Land Maintenance Modifier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "land_morale", Name: "Morale of Armies", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "leader_cost", Name: "Leader Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "leader_land_fire", Name: "Land Leader Fire", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "leader_land_manuever", Name: "Land Leader Manoeuvre", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "leader_land_shock", Name: "Land Leader Shock", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "leader_naval_fire", Name: "Naval Leader Fire", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "leader_naval_manuever", Name: "Naval Leader Manoeuvre", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "leader_naval_shock", Name: "Naval Leader Shock", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "leader_siege", Name: "Leader Siege", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "legitimacy", Name: "Yearly Legitimacy", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "liberty_desire_from_subject_development", Name: "Liberty Desire from Subject Development", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "light_ship_cost", Name: "Light Ship Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "light_ship_power", Name: "Light Ship Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "loot_amount", Name: "Looting Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "lowercastes_loyalty_modifier", Name: "Lower Castes Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "mages_loyalty_modifier", Name: "Mages Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "manpower_in_accepted_culture_provinces", Name: "Manpower in Accepted Culture provinces", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "manpower_in_culture_group_provinces", Name: "Manpower in same Culture Group provinces", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "manpower_in_own_culture_provinces", Name: "Manpower in Primary Culture provinces", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "manpower_in_true_faith_provinces", Name: "Manpower in True Faith provinces", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "manpower_recovery_speed", Name: "Manpower Recovery Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "max_absolutism", Name: "Maximum Absolutism", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "max_absolutism_effect", Name: "Max Effect of Absolutism", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "max_general_maneuver", Name: "Max General Manoeuvre", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "max_hostile_attrition", Name: "Max Hostile Attrition", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "max_revolutionary_zeal", Name: "Maximum Revolutionary Zeal", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "may_explore", Name: "Allows recruitment of explorers & conquistadors", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "may_perform_slave_raid", Name: "May Raid Coasts", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "may_perform_slave_raid_on_same_religion", Name: "May Raid Coasts, including coasts of countries with same religion", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "may_recruit_female_generals", Name: "May Recruit Female Generals", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "merc_leader_army_tradition", Name: "Mercenary Leader Army Tradition", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "merc_maintenance_modifier", Name: "Mercenary Maintenance", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "mercantilism_cost", Name: "Cost to Promote Mercantilism", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "mercenary_cost", Name: "Mercenary Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "mercenary_discipline", Name: "Mercenary Discipline", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "mercenary_manpower", Name: "Mercenary Manpower", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "merchants", Name: "Merchants", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "migration_cost", Name: "Migration Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "mil_advisor_cost", Name: "Military Advisor Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "mil_tech_cost_modifier", Name: "Military Technology Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "missionaries", Name: "Missionaries", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "missionary_maintenance_cost", Name: "Missionary Maintenance Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "monarch_admin_power", Name: "Monarch Administrative Skill", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "monarch_diplomatic_power", Name: "Monarch Diplomatic Skill", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "monarch_lifespan", Name: "Average Monarch Lifespan", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "monarch_military_power", Name: "Monarch Military Skill", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "monstrous_tribes_loyalty_modifier", Name: "Monstrous Tribes Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "monthly_church_power", Name: "Monthly Faith Power", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "monthly_fervor_increase", Name: "Monthly Fervour", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "monthly_gold_inflation_modifier", Name: "Monthly Gold Inflation Multiplier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "monthly_heir_claim_increase", Name: "Monthly Heir Claim Increase", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "monthly_reform_progress_modifier", Name: "Monthly Reform Progress Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "monthly_splendor", Name: "Monthly Splendour", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "morale_damage", Name: "Morale Damage", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "morale_damage_received", Name: "Morale Damage Received", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "move_capital_cost_modifier", Name: "Move Capital cost modifier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "movement_speed", Name: "Movement Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "movement_speed_in_fleet_modifier", Name: "Fleet Movement Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "movement_speed_onto_off_boat_modifier", Name: "Movement Speed On and Off Ships", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "national_focus_years", Name: "Change National Focus Cooldown Years", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "native_assimilation", Name: "Native Assimilation", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "native_uprising_chance", Name: "Native Uprising Chance", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "naval_attrition", Name: "Naval Attrition", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "naval_forcelimit_modifier", Name: "Naval Force Limit Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "naval_maintenance_modifier", Name: "Naval Maintenance Modifier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "naval_morale", Name: "Morale of Navies", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "naval_morale_damage", Name: "Naval Morale Damage", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "naval_morale_damage_received", Name: "Naval Morale Damage Received", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "naval_tradition_from_battle", Name: "Naval Tradition From Battles", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "naval_tradition_from_trade", Name: "Naval Tradition From Trade", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "navy_tradition", Name: "Yearly Navy Tradition", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "navy_tradition_decay", Name: "Yearly Naval Tradition Decay", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "no_religion_penalty", Name: "Heretic and heathen provinces do not give any penalties", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "nobles_influence_modifier", Name: "Nobility Influence", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "nobles_loyalty_modifier", Name: "Nobility Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "num_accepted_cultures", Name: "Max Promoted Cultures", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "number_of_cannons_modifier", Name: "Number of Cannons Modifier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "own_coast_naval_combat_bonus", Name: "Naval Combat Bonus off owned coast", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "papal_influence", Name: "Yearly Rectorate Influence", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "papal_influence_from_cardinals", Name: "Rectorate Influence from Veridicals", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "placed_merchant_power", Name: "Merchant Trade Power", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "possible_adm_policy", Name: "Administrative Possible Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "possible_condottieri", Name: "Possible Condottieri", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "possible_dip_policy", Name: "Diplomatic Possible Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "possible_mil_policy", Name: "Military Possible Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "possible_policy", Name: "Possible Policies", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "power_projection_from_insults", Name: "Power Projection From Insults", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "prestige", Name: "Yearly Prestige", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "prestige_decay", Name: "Prestige Decay", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "prestige_from_land", Name: "Prestige from Land battles", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "prestige_from_naval", Name: "Prestige from Naval battles", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "prestige_per_development_from_conversion", Name: "Prestige per Development From Conversion", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "privateer_efficiency", Name: "Privateer Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "production_efficiency", Name: "Production Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "promote_culture_cost", Name: "Promote Culture Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "province_warscore_cost", Name: "Province War Score Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "raj_ministries_loyalty_modifier", Name: "Raj Ministries Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "range", Name: "Colonial Range", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "raze_power_gain", Name: "Razing Power Gain", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "rebel_support_efficiency", Name: "Rebel Support Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "recover_army_morale_speed", Name: "Recover Army Morale Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "reduced_liberty_desire", Name: "Liberty Desire in Subjects", Format: Percent, Normal: Positive, Multiplier: 1},
	{ID: "reduced_liberty_desire_on_other_continent", Name: "Liberty Desire in Other Continent Subjects", Format: Percent, Normal: Positive, Multiplier: 1},
	{ID: "reduced_liberty_desire_on_same_continent", Name: "Liberty Desire in Same Continent Subjects", Format: Percent, Normal: Positive, Multiplier: 1},
	{ID: "reelection_cost", Name: "Reelection Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "reform_progress_growth", Name: "Reform Progress Growth", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "reinforce_cost_modifier", Name: "Reinforce Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "reinforce_speed", Name: "Reinforce Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "religious_unity", Name: "Religious Unity", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "republican_tradition", Name: "Yearly Republican Tradition", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "reserves_organisation", Name: "Reduced Morale Damage Taken By Reserves", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "rival_border_fort_maintenance", Name: "Fort Maintenance on Border with Rival", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "rival_change_cost", Name: "Change Rival Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "sailor_maintenance_modifer", Name: "Sailor Maintenance", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "sailor_maintenance_modifier", Name: "Sailor Maintenance", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "sailors_recovery_speed", Name: "Sailor Recovery Speed", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "same_culture_advisor_cost", Name: "Cost of Advisors with Ruler's Culture", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "same_religion_advisor_cost", Name: "Cost of Advisors with Ruler's Religion", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "sea_repair", Name: "Ships can repair when in coastal sea zones", Format: None, Normal: Positive, Multiplier: 1},
	{ID: "ship_durability", Name: "Ship Durability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "ship_power_propagation", Name: "Ship Tradepower Propagation", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "shock_damage", Name: "Shock Damage", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "shock_damage_received", Name: "Shock Damage Received", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "siege_ability", Name: "Siege Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "siege_blockade_progress", Name: "Blockade Impact on Siege", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "spy_action_cost_modifier", Name: "Spy Action Cost Modifier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "spy_offence", Name: "Spy Network Construction", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "stability_cost_modifier", Name: "Stability Cost Modifier", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "stability_cost_to_declare_war", Name: "Stability Hit to Declare War", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "state_governing_cost", Name: "States Governing Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "state_maintenance_modifier", Name: "State Maintenance", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "sunk_ship_morale_hit_received", Name: "Morale Hit When Losing a Ship", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "sunk_ship_morale_hit_recieved", Name: "Morale Hit When Losing a Ship", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "supply_limit_modifier", Name: "Supply Limit Modifier", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "technology_cost", Name: "Technology Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "tiger_command_influence_modifier", Name: "Tiger Command Influence", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "tiger_command_loyalty_modifier", Name: "Tiger Command Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "tolerance_heathen", Name: "Tolerance of Heathens", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "tolerance_heretic", Name: "Tolerance of Heretics", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "tolerance_own", Name: "Tolerance of the True Faith", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "trade_company_investment_cost", Name: "Trade Company Investment Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "trade_efficiency", Name: "Trade Efficiency", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "trade_range_modifier", Name: "Trade Range", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "trade_steering", Name: "Trade Steering", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "transport_cost", Name: "Transport Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "transport_power", Name: "Transport Ship Combat Ability", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "unjustified_demands", Name: "Unjustified Demands", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "uppercastes_loyalty_modifier", Name: "Upper Castes Loyalty Equilibrium", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "vassal_forcelimit_bonus", Name: "Vassal Force Limit Contribution", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "vassal_income", Name: "Income from Vassals", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "war_exhaustion", Name: "Monthly War Exhaustion", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "war_exhaustion_cost", Name: "Cost of Reducing War Exhaustion", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "war_taxes_cost_modifier", Name: "War Taxes Cost", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "warscore_cost_vs_other_religion", Name: "War Score Cost vs Other Religions", Format: Percent, Normal: Negative, Multiplier: 100},
	{ID: "yearly_absolutism", Name: "Yearly Absolutism", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "yearly_army_professionalism", Name: "Yearly Army Professionalism", Format: Percent, Normal: Positive, Multiplier: 100},
	{ID: "yearly_corruption", Name: "Yearly Corruption", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "yearly_government_power", Name: "Yearly Government Power", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "yearly_harmony", Name: "Yearly Harmony", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "yearly_karma_decay", Name: "Yearly Corinite Paragonhood Decay", Format: Flat, Normal: Positive, Multiplier: 1},
	{ID: "yearly_patriarch_authority", Name: "Yearly Demonic Power", Format: Flat, Normal: Negative, Multiplier: 1},
	{ID: "years_of_nationalism", Name: "Years of Separatism", Format: Flat, Normal: Negative, Multiplier: 1},
}
